package domain

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// ParseContents decodes the textual contents of a cart detail row into
// product ids, keeping order and duplicates. Every element must be a plain
// integer literal within int64 range.
func ParseContents(raw string) ([]int64, error) {
	var elems *[]json.RawMessage

	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedContents, err)
	}

	if elems == nil {
		return nil, fmt.Errorf("%w: contents[%s] is not a list", ErrMalformedContents, raw)
	}

	ids := make([]int64, 0, len(*elems))
	for i, elem := range *elems {
		id, err := strconv.ParseInt(string(bytes.TrimSpace(elem)), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element[%d]: %w", ErrMalformedContents, i, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func EncodeContents(ids []int64) string {
	// nil marshals to null, which ParseContents rejects
	if ids == nil {
		ids = []int64{}
	}

	// []int64 cannot fail to marshal
	data, _ := json.Marshal(ids)

	return string(data)
}
