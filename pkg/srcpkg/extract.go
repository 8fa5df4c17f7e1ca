// Package srcpkg extracts package declarations from source files.  Files are
// scanned line-by-line for the first declaration of the form "package NAME";
// no full syntax parsing is attempted.
package srcpkg

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

const (
	// PlaceholderPackageName is the conventional name for non-buildable
	// documentation directories; it never identifies an importable package.
	PlaceholderPackageName = "documentation"
	// CommandPackageName identifies executable commands, which are not
	// importable.
	CommandPackageName = "main"

	testFileSuffix    = "_test.go"
	testPackageSuffix = "_test"
	sourceFileSuffix  = ".go"
)

var packageDeclRe = regexp.MustCompile(`^\s*package\s+([A-Za-z_][A-Za-z0-9_]*)`)

// ExtractPackage scans the named file for its package declaration and returns
// the declared name.  Returns ok=false if the file has no declaration or
// cannot be read; an unreadable file is a skip, never a fatal condition, so
// one bad file cannot abort a whole scan.
func ExtractPackage(filename string) (name string, ok bool) {
	f, err := os.Open(filename)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if match := packageDeclRe.FindStringSubmatch(scanner.Text()); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// Qualifies reports whether the given package name identifies an importable
// library package.  Test packages, commands, and the documentation
// placeholder do not qualify.
func Qualifies(name string) bool {
	if name == "" || name == CommandPackageName || name == PlaceholderPackageName {
		return false
	}
	return !strings.HasSuffix(name, testPackageSuffix)
}

// IsSourceFile reports whether the given base name is a non-test source file.
func IsSourceFile(basename string) bool {
	if strings.HasSuffix(basename, testFileSuffix) {
		return false
	}
	return strings.HasSuffix(basename, sourceFileSuffix)
}
