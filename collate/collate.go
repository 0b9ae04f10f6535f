package collate

import (
	"errors"
	"fmt"

	"github.com/veldram/spantile/tensor"
)

// Sample is one unit of training data: named fields mapping to
// tensors or scalar metadata.
type Sample map[string]any

// ErrMixedKey indicates a key holding tensor values in some samples
// and non-tensor values in others, which no collation can combine.
var ErrMixedKey = errors.New("collate: tensor and non-tensor values under one key")

// Stack combines a batch along a new leading axis: tensor values of
// identical shape per key are stacked, everything else is kept as the
// raw per-sample []any.
func Stack(batch []Sample) (Sample, error) {
	out := make(Sample)
	for key, values := range transpose(batch) {
		ts, ok, err := tensorValues(key, values)
		if err != nil {
			return nil, err
		}
		if !ok {
			out[key] = values
			continue
		}
		stacked, err := tensor.Stack(ts)
		if err != nil {
			return nil, fmt.Errorf("collate: stack %q: %w", key, err)
		}
		out[key] = stacked
	}
	return out, nil
}

// Concat joins a batch along the existing leading axis: tensor values
// per key are concatenated, while a non-tensor key keeps only the
// first sample's value — the common case of positional metadata
// replicated identically across the batch.
func Concat(batch []Sample) (Sample, error) {
	out := make(Sample)
	for key, values := range transpose(batch) {
		ts, ok, err := tensorValues(key, values)
		if err != nil {
			return nil, err
		}
		if !ok {
			out[key] = values[0]
			continue
		}
		joined, err := tensor.Concat(ts)
		if err != nil {
			return nil, fmt.Errorf("collate: concat %q: %w", key, err)
		}
		out[key] = joined
	}
	return out, nil
}

// Merge folds a batch into a single sample. A tensor key seen again
// takes the elementwise maximum with the previous value, so nodata
// zeros yield to real data; any other repeated key is overwritten by
// the later sample.
func Merge(batch []Sample) (Sample, error) {
	out := make(Sample)
	for _, sample := range batch {
		for key, value := range sample {
			prev, seen := out[key]
			t, isTensor := value.(*tensor.Dense)
			if !seen || !isTensor {
				out[key] = value
				continue
			}
			pt, ok := prev.(*tensor.Dense)
			if !ok {
				return nil, fmt.Errorf("collate: merge %q: %w", key, ErrMixedKey)
			}
			merged, err := tensor.Maximum(pt, t)
			if err != nil {
				return nil, fmt.Errorf("collate: merge %q: %w", key, err)
			}
			out[key] = merged
		}
	}
	return out, nil
}

// Unbind is the inverse of Stack: tensor values split along the
// leading axis, []any values distribute one element per sample, and
// any other value is replicated into every sample. All split keys
// must agree on the leading-axis length.
func Unbind(sample Sample) ([]Sample, error) {
	split := make(map[string][]any, len(sample))
	for key, value := range sample {
		switch v := value.(type) {
		case *tensor.Dense:
			parts, err := tensor.Unbind(v)
			if err != nil {
				return nil, fmt.Errorf("collate: unbind %q: %w", key, err)
			}
			elems := make([]any, len(parts))
			for i, p := range parts {
				elems[i] = p
			}
			split[key] = elems
		case []any:
			split[key] = v
		default:
			// Replicated below.
		}
	}

	size := -1
	for key, elems := range split {
		if size == -1 {
			size = len(elems)
			continue
		}
		if len(elems) != size {
			return nil, fmt.Errorf("collate: unbind %q: leading length %d, want %d: %w",
				key, len(elems), size, tensor.ErrShapeMismatch)
		}
	}
	if size == -1 {
		// Nothing to split: the sample is its own batch of one.
		size = 1
	}

	out := make([]Sample, size)
	for i := range out {
		out[i] = make(Sample, len(sample))
	}
	for key, value := range sample {
		if elems, ok := split[key]; ok {
			for i, v := range elems {
				out[i][key] = v
			}
			continue
		}
		for i := range out {
			out[i][key] = value
		}
	}
	return out, nil
}

// transpose converts a list of samples into a map from key to the
// per-sample value list, preserving batch order. Keys missing from
// some samples simply produce shorter lists (external contract).
func transpose(batch []Sample) map[string][]any {
	collated := make(map[string][]any)
	for _, sample := range batch {
		for key, value := range sample {
			collated[key] = append(collated[key], value)
		}
	}
	return collated
}

// tensorValues reports whether the values under key are tensors,
// following the first value's type, and converts them when they are.
// A mix of tensor and non-tensor values is an ErrMixedKey.
func tensorValues(key string, values []any) ([]*tensor.Dense, bool, error) {
	if len(values) == 0 {
		return nil, false, nil
	}
	if _, ok := values[0].(*tensor.Dense); !ok {
		return nil, false, nil
	}
	ts := make([]*tensor.Dense, len(values))
	for i, v := range values {
		t, ok := v.(*tensor.Dense)
		if !ok {
			return nil, false, fmt.Errorf("collate: key %q sample %d: %w", key, i, ErrMixedKey)
		}
		ts[i] = t
	}
	return ts, true, nil
}
