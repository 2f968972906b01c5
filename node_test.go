package svgr

import (
	"errors"
	"testing"
)

func TestAcquireResolvesRegisteredNode(t *testing.T) {
	doc := NewDocument()
	id := doc.AddGroup(GroupLayer())

	acquired := newAcquiredNodes(doc)
	node, release, err := acquired.Acquire(id)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()
	if node.Kind != RefGroup {
		t.Errorf("Kind = %v, want RefGroup", node.Kind)
	}
	if node.ID() != id {
		t.Errorf("ID = %v, want %v", node.ID(), id)
	}
}

func TestAcquireUnknownNode(t *testing.T) {
	acquired := newAcquiredNodes(NewDocument())
	_, _, err := acquired.Acquire(42)
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestAcquireDetectsCycle(t *testing.T) {
	doc := NewDocument()
	id := doc.AddGroup(GroupLayer())

	acquired := newAcquiredNodes(doc)
	_, release, err := acquired.Acquire(id)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}

	if _, _, err := acquired.Acquire(id); !errors.Is(err, ErrCircularReference) {
		t.Fatalf("re-entrant Acquire err = %v, want ErrCircularReference", err)
	}

	// After release the node resolves again.
	release()
	_, release2, err := acquired.Acquire(id)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	release2()
}

func TestAcquireEnforcesReferenceCap(t *testing.T) {
	doc := NewDocument()
	id := doc.AddGroup(GroupLayer())

	acquired := newAcquiredNodes(doc)
	acquired.numAcquired = maxReferencedElements

	if _, _, err := acquired.Acquire(id); !errors.Is(err, ErrMaxReferencesExceeded) {
		t.Fatalf("err = %v, want ErrMaxReferencesExceeded", err)
	}
}

func TestRecoverableErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"circular reference", ErrCircularReference, true},
		{"node not found", ErrNodeNotFound, true},
		{"invalid transform", ErrInvalidTransform, true},
		{"zero size", ErrZeroSize, true},
		{"invalid parameter", ErrInvalidParameter, true},
		{"max references", ErrMaxReferencesExceeded, true},
		{"nesting depth", ErrNestingDepthExceeded, false},
		{"wrapped in filter error", &FilterError{Primitive: 2, Err: ErrNodeNotFound}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRecoverable(tt.err); got != tt.want {
				t.Errorf("isRecoverable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
