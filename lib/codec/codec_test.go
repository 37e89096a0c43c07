package codec

import (
	"reflect"
	"testing"
)

// testCodecs is a map of codec name to factory function
var testCodecs = map[string]func() ICodec{
	"JSON": NewJSONCodec,
	"GOB":  NewGOBCodec,
}

type task struct {
	ID          string
	Description string
	Complete    bool
}

// testSnapshots creates a set of snapshots with different shapes
func testSnapshots() [][]task {
	return [][]task{
		// empty snapshot
		{},

		// single element
		{
			{ID: "a", Description: "Buy milk", Complete: true},
		},

		// multiple elements, order matters
		{
			{ID: "a", Description: "Buy milk", Complete: true},
			{ID: "b", Description: "Walk dog"},
			{ID: "c", Description: "Water plants"},
		},

		// element with zero values only
		{
			{},
		},
	}
}

// TestCodecRoundTrip tests that snapshots survive an encode/decode cycle
func TestCodecRoundTrip(t *testing.T) {
	snapshots := testSnapshots()

	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			for i, snapshot := range snapshots {
				data, err := c.Marshal(snapshot)
				if err != nil {
					t.Errorf("Failed to marshal snapshot %d: %v", i, err)
					continue
				}

				var result []task
				err = c.Unmarshal(data, &result)
				if err != nil {
					t.Errorf("Failed to unmarshal snapshot %d: %v", i, err)
					continue
				}

				if len(snapshot) == 0 && len(result) == 0 {
					continue
				}
				if !reflect.DeepEqual(snapshot, result) {
					t.Errorf("Snapshot %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, snapshot, result)
				}
			}
		})
	}
}

// TestInvalidData tests how the codecs handle corrupt input
func TestInvalidData(t *testing.T) {
	for name, factory := range testCodecs {
		t.Run(name, func(t *testing.T) {
			c := factory()

			var result []task
			if err := c.Unmarshal([]byte{0xff, 0x00, 0x01}, &result); err == nil {
				t.Errorf("Expected error for corrupt input but got none")
			}
		})
	}
}
