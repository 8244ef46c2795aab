package assert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// FixturePath returns the golden file for fixtureName in the current test:
// testdata/fixtures/<TestName>_<fixtureName>.txt. Subtest separators are
// flattened so every fixture lives in one directory.
func (a *Assert) FixturePath(fixtureName string) string {
	testName := strings.ReplaceAll(a.T.Name(), "/", "_")
	return filepath.Join("testdata", "fixtures", fmt.Sprintf("%s_%s.txt", testName, fixtureName))
}

// EqualToFixture compares actual with the content of a golden file.
// If GEN_FIXTURE=true is set, it writes actual to the fixture file and passes the test.
func (a *Assert) EqualToFixture(fixtureName string, actual string) {
	a.T.Helper()
	fixturePath := a.FixturePath(fixtureName)

	if os.Getenv("GEN_FIXTURE") == "true" {
		err := os.MkdirAll(filepath.Dir(fixturePath), 0755)
		a.NoError(err, "Failed to create fixture directory")
		err = os.WriteFile(fixturePath, []byte(actual), 0644)
		a.NoError(err, "Failed to write fixture file")
		return
	}

	expected, err := os.ReadFile(fixturePath)
	if !a.NoError(err, "Failed to read fixture file, run with GEN_FIXTURE=true to create it") {
		return
	}
	a.Equal(string(expected), actual, "Output does not match fixture %s", fixturePath)
}
