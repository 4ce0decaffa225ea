package ds

// MakeChunks try to group elements within a slice into smaller "chunk",
// each contains n elements. The last chunk holds the remainder. For example,
//
//	MakeChunks([]int{1, 2, 3, 4, 5}, 2)
//
// should return this exact value:
//
//	[][]int{{1, 2}, {3, 4}, {5}}
func MakeChunks[T any](ts []T, n int) [][]T {
	if n <= 0 {
		return nil
	}
	chunks := make([][]T, 0, len(ts)/n+1)
	for i := 0; i < len(ts); i += n {
		end := min(i+n, len(ts))
		chunks = append(chunks, ts[i:end])
	}
	return chunks
}
