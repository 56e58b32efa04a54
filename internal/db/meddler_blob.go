package db

import (
	"fmt"

	"github.com/russross/meddler"
)

func init() {
	meddler.Register("blob", BlobMeddler{})
}

// BlobMeddler maps a nullable BLOB column to a []byte field.
// NULL reads back as a nil slice and a nil or empty slice is written as NULL,
// so an absent value never turns into a zero-length blob.
type BlobMeddler struct{}

func (b BlobMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new([]byte), nil
}

func (b BlobMeddler) PostRead(fieldAddr, scanTarget interface{}) error {
	raw, ok := scanTarget.(*[]byte)
	if !ok {
		return fmt.Errorf("expected *[]byte, got %T", scanTarget)
	}

	ptr, ok := fieldAddr.(*[]byte)
	if !ok {
		return fmt.Errorf("expected *[]byte, got %T", fieldAddr)
	}

	if *raw == nil {
		*ptr = nil
		return nil
	}

	// the driver may reuse the scanned buffer
	*ptr = append([]byte{}, (*raw)...)
	return nil
}

func (b BlobMeddler) PreWrite(field interface{}) (saveValue interface{}, err error) {
	value, ok := field.([]byte)
	if !ok {
		return nil, fmt.Errorf("expected []byte, got %T", field)
	}

	if len(value) == 0 {
		return nil, nil
	}

	return value, nil
}
