package types

import "fmt"

// c3Linearize computes the Method Resolution Order for a type with the
// given direct bases, using the C3 algorithm. The result always starts with the type itself and
// ends with Object.
func c3Linearize(self *Type, bases []*Type) ([]*Type, error) {
	if len(bases) == 0 {
		return []*Type{self}, nil
	}

	sequences := make([][]*Type, 0, len(bases)+1)
	for _, b := range bases {
		sequences = append(sequences, append([]*Type(nil), b.MRO...))
	}
	sequences = append(sequences, append([]*Type(nil), bases...))

	merged := []*Type{self}
	for {
		sequences = dropEmpty(sequences)
		if len(sequences) == 0 {
			return merged, nil
		}

		var head *Type
		for _, seq := range sequences {
			cand := seq[0]
			if !appearsInTail(cand, sequences) {
				head = cand
				break
			}
		}
		if head == nil {
			return nil, fmt.Errorf("types: inconsistent base class ordering for %q", self.Name)
		}

		merged = append(merged, head)
		for i, seq := range sequences {
			sequences[i] = removeHead(seq, head)
		}
	}
}

func dropEmpty(seqs [][]*Type) [][]*Type {
	out := seqs[:0]
	for _, s := range seqs {
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func appearsInTail(t *Type, seqs [][]*Type) bool {
	for _, seq := range seqs {
		for _, cand := range seq[1:] {
			if cand == t {
				return true
			}
		}
	}
	return false
}

func removeHead(seq []*Type, head *Type) []*Type {
	if len(seq) > 0 && seq[0] == head {
		return seq[1:]
	}
	out := seq[:0:0]
	for _, t := range seq {
		if t != head {
			out = append(out, t)
		}
	}
	return out
}
