package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLen = 8

// NewID generates a card id of the form {kind}-{millis}-{suffix}. The random
// suffix keeps ids collision-resistant within a single session even when two
// cards are created in the same millisecond.
func NewID(kind Kind) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return fmt.Sprintf("%s-%d-%s", kind, time.Now().UnixMilli(), suffix)
}
