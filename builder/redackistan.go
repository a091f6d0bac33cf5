// This file carries the embedded default city dataset.

package builder

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed redackistan.yml
var redackistanYML []byte

var (
	redackOnce sync.Once
	redackSpec *Spec
	redackErr  error
)

// Redackistan returns the embedded default city dataset: the five metro
// lines and twenty-eight stations of Redackistan. The embedded spec is
// parsed once; a parse failure is a build defect and panics.
func Redackistan() *Spec {
	redackOnce.Do(func() {
		redackSpec, redackErr = Load(bytes.NewReader(redackistanYML))
	})
	if redackErr != nil {
		panic(fmt.Sprintf("builder: embedded redackistan.yml is broken: %v", redackErr))
	}

	return redackSpec
}
