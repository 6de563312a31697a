// Package profile defines rendering profiles, which shape how a master record
// is presented in a generated CV.
//
// A profile decides whether earlier experience is shown, and how, and which
// competency selection set is used. Profiles are plain JSON or YAML documents
// kept in a profiles directory; see [List] and [Resolve].
package profile
