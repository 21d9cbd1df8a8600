package blocklist

// nthElement rearranges s in place (Hoare-style quickselect) so that s[k]
// holds the value that would occupy position k in a full ascending sort by
// Dist, every element before index k has Dist <= s[k].Dist, and every
// element after has Dist >= s[k].Dist. Linear-time selection in place of a
// full sort, used both for median splits and for picking the M-th smallest
// element during Pull.
func nthElement(s []Element, k int) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

// partition runs a Lomuto partition of s[lo:hi+1] around the pivot value
// s[hi].Dist and returns the pivot's final index.
func partition(s []Element, lo, hi int) int {
	pivot := s[hi].Dist
	i := lo
	for j := lo; j < hi; j++ {
		if s[j].Dist < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}

// splitByMedian recursively partitions elems around the median until every
// resulting chunk has length <= maxSize, returning the chunks in ascending
// value order. This costs O(L log(L/maxSize)) via repeated linear-time
// selection, rather than O(L log L) for a full sort, which is what keeps
// BatchPrepend's large-input path inside its amortized budget.
func splitByMedian(elems []Element, maxSize int) [][]Element {
	if len(elems) <= maxSize {
		return [][]Element{elems}
	}
	mid := len(elems) / 2
	nthElement(elems, mid)
	left := splitByMedian(elems[:mid], maxSize)
	right := splitByMedian(elems[mid:], maxSize)
	return append(left, right...)
}
