package sequence

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/tarm/stores/ints_ints"
)

// SaveWindows stores each entry as [id, offset] -> [support, pattern...].
// A window without entries is stored as a single empty value so that it
// survives the round trip.
func SaveWindows(windows []*Window, store ints_ints.MultiMap) error {
	for _, w := range windows {
		key := []int32{int32(w.ID), int32(w.Offset)}
		if len(w.Entries) == 0 {
			if err := store.Add(key, []int32{}); err != nil {
				return err
			}
			continue
		}
		for _, e := range w.Entries {
			value := make([]int32, 0, len(e.Pattern)+1)
			value = append(value, int32(e.Support))
			value = append(value, e.Pattern...)
			if err := store.Add(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// OpenWindows reads back windows written by SaveWindows in id order.
func OpenWindows(store ints_ints.MultiMap) ([]*Window, error) {
	windows := make([]*Window, 0, 10)
	err := ints_ints.Do(store.Iterate, func(key, value []int32) error {
		if len(key) != 2 {
			return errors.Errorf("window key should be [id, offset], got %v", key)
		}
		id := int(key[0])
		if len(windows) == 0 || windows[len(windows)-1].ID != id {
			windows = append(windows, &Window{
				ID:      id,
				Offset:  int(key[1]),
				Entries: make([]Entry, 0, 10),
			})
		}
		if len(value) == 0 {
			return nil
		}
		w := windows[len(windows)-1]
		w.Entries = append(w.Entries, Entry{Pattern: value[1:], Support: int(value[0])})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return windows, nil
}
