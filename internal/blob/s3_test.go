package blob_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarlsen/fishlog/backend/internal/blob"
)

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := blob.NewS3(context.Background(), blob.S3Config{Region: "eu-north-1"})
	assert.Error(t, err)
}
