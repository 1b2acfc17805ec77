// Package envfile parses the shared configuration file.
//
// The file holds one entry or comment per line:
//
//	# All settings are namespaced. Syntax: <package>:<key>=<value>
//	foo:BUF_SZ=128
//	bar:GREETING=a=b=c
//
// A line starting with '#' is a comment. Every other line must contain a ':'
// followed later by a '='. The owner is everything before the first ':', the
// key runs up to the first '=' after it, and the value is the rest of the
// line, further '=' characters included. There is no escaping, quoting or
// trimming. Blank lines are not comments and are rejected.
//
// Scan streams entries to a callback so that a caller can act on earlier
// lines before a later line turns out to be malformed.
package envfile
