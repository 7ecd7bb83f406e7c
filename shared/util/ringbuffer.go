package util

// RingBuffer guarda as últimas N amostras; ao encher, a mais antiga é sobrescrita.
// A capacidade é arredondada para potência de 2. Não é segura para uso concorrente.
type RingBuffer[T any] struct {
	entries []T
	mask    uint64
	next    uint64
}

// NewRingBuffer cria um buffer circular com a capacidade dada.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	actualCap := nextPowerOfTwo(capacity)
	return &RingBuffer[T]{
		entries: make([]T, actualCap),
		mask:    uint64(actualCap - 1),
	}
}

// Push adiciona uma amostra.
func (r *RingBuffer[T]) Push(item T) {
	r.entries[r.next&r.mask] = item
	r.next++
}

// Len retorna quantas amostras estão guardadas.
func (r *RingBuffer[T]) Len() int {
	if r.next < uint64(len(r.entries)) {
		return int(r.next)
	}
	return len(r.entries)
}

// Cap retorna a capacidade real.
func (r *RingBuffer[T]) Cap() int {
	return len(r.entries)
}

// Values retorna as amostras da mais antiga para a mais recente.
func (r *RingBuffer[T]) Values() []T {
	n := r.Len()
	out := make([]T, n)
	start := r.next - uint64(n)
	for i := range n {
		out[i] = r.entries[(start+uint64(i))&r.mask]
	}
	return out
}

func nextPowerOfTwo(x int) int {
	res := 2
	for res < x {
		res <<= 1
	}
	return res
}
