// Package osutil holds operating system specific constants
package osutil

const Windows = "windows"

const (
	DirPermission  = 0o755
	FilePermission = 0o644
	DBPermission   = 0o600
)

// DefaultEditor is used by edit-config when neither VISUAL nor EDITOR is set.
func DefaultEditor(goos string) string {
	if goos == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
