// Package launcher decides whether an install is needed, obtains a
// download URL through the chooser when it is, delegates to the installer,
// and finally replaces the current process image with the browser binary,
// forwarding the launcher's own arguments unchanged.
package launcher
