package persistence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinitionError_WrapsSentinel(t *testing.T) {
	err := NewDefinitionError("DefinitionByID", "wf-1", ErrDefinitionNotFound)

	assert.True(t, errors.Is(err, ErrDefinitionNotFound))
	assert.True(t, IsDefinitionNotFound(err))
	assert.Contains(t, err.Error(), "DefinitionByID")
	assert.Contains(t, err.Error(), "wf-1")
}

func TestDefinitionError_ContentTypeTarget(t *testing.T) {
	err := NewContentTypeError("DefaultDefinitionByContentType", "post", ErrDefaultDefinitionNotFound)

	assert.True(t, IsDefaultDefinitionNotFound(err))
	assert.Contains(t, err.Error(), "content type post")
}

func TestDefinitionError_MessageIncluded(t *testing.T) {
	err := &DefinitionError{
		Op:           "Save",
		DefinitionID: "wf-1",
		Err:          errors.New("disk full"),
		Message:      "while writing definition",
	}

	assert.Contains(t, err.Error(), "while writing definition")
	assert.Contains(t, err.Error(), "disk full")
}

func TestContentError_WrapsSentinel(t *testing.T) {
	err := NewContentError("GetState", "post-1", ErrContentNotFound)

	assert.True(t, errors.Is(err, ErrContentNotFound))
	assert.True(t, IsContentNotFound(err))
	assert.Contains(t, err.Error(), "post-1")
}

func TestPredicates_RejectUnrelatedErrors(t *testing.T) {
	plain := errors.New("boom")

	assert.False(t, IsDefinitionNotFound(plain))
	assert.False(t, IsDefaultDefinitionNotFound(plain))
	assert.False(t, IsContentNotFound(plain))
	assert.False(t, IsDefinitionAlreadyExists(plain))
	assert.False(t, IsDefinitionNotFound(nil))
}

func TestErrorChain_UnwrapsThroughWrappers(t *testing.T) {
	inner := NewContentError("GetState", "post-1", ErrContentNotFound)
	outer := NewContentError("Execute", "post-1", inner)

	assert.True(t, IsContentNotFound(outer))
}
