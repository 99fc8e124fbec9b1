// Package dialog presents interactive prompts to the user.
//
// The primary implementation drives zenity as a subprocess over its
// line-oriented protocol: form dialogs print pipe-separated field values
// on stdout, progress dialogs consume integer percentage lines and
// "# label" lines on stdin, and exit status 1 uniformly signals that the
// user cancelled. A console fallback backed by plain prompts and a
// terminal progress bar is used when no dialog program can be found, so
// the launcher still works on headless hosts.
package dialog
