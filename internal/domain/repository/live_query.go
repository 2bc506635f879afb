package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNoEmission jonli so'rov natija bermasdan yopildi
var ErrNoEmission = errors.New("live query closed before first result")

// LiveQuery jadval o'zgarganda to'liq natijani qayta yuboradigan so'rov.
//
// Updates kanali birinchi natijani darhol, keyin har bir o'zgarishdan keyin
// yangi natijani oladi. Iste'molchi orqada qolsa faqat oxirgi natija saqlanadi.
// Close yoki kontekst bekor qilinganda kanal yopiladi; so'rov xatosi Err orqali
// qaytariladi.
type LiveQuery[T any] interface {
	Updates() <-chan []T
	Err() error
	Close()
}

// First birinchi natijani olib so'rovni yopadi
func First[T any](ctx context.Context, lq LiveQuery[T]) ([]T, error) {
	defer lq.Close()

	select {
	case rows, ok := <-lq.Updates():
		if !ok {
			if err := lq.Err(); err != nil {
				return nil, err
			}
			return nil, ErrNoEmission
		}
		return rows, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
