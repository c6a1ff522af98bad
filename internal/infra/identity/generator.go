package identity

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generator выдает UUID бронирований и коды доступа вида "A042"
// Код доступа не уникален глобально (26 000 вариантов) и не должен использоваться как ключ поиска
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// NewReservationID возвращает новый UUID v4
func (g *Generator) NewReservationID() string {
	return uuid.NewString()
}

// NewAccessCode возвращает код: одна заглавная латинская буква и три цифры
func (g *Generator) NewAccessCode() string {
	letter := letters[rand.Intn(len(letters))]
	return fmt.Sprintf("%c%0*d", letter, domain.AccessCodeDigits, rand.Intn(pow10(domain.AccessCodeDigits)))
}

func pow10(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}
