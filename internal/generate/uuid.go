package generate

import (
	"fmt"

	"github.com/google/uuid"
)

const MaxUUIDs = 100

// UUIDs returns n random identifiers of the given version (4 or 7). n is
// clamped to 1..MaxUUIDs.
func UUIDs(n, version int) ([]string, error) {
	if n < 1 {
		n = 1
	}
	if n > MaxUUIDs {
		n = MaxUUIDs
	}

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var (
			id  uuid.UUID
			err error
		)
		switch version {
		case 4:
			id, err = uuid.NewRandom()
		case 7:
			id, err = uuid.NewV7()
		default:
			return nil, fmt.Errorf("unsupported uuid version %d", version)
		}
		if err != nil {
			return nil, fmt.Errorf("uuid v%d: %w", version, err)
		}
		ids = append(ids, id.String())
	}
	return ids, nil
}
