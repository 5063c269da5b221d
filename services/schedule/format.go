// File: services/schedule/format.go
package schedule

import (
	"fmt"
	"time"
)

// Stored instants carry the tenant's wall-clock numerals under a UTC label,
// so rendering reads the UTC fields directly instead of converting.

var weekdaysPT = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatReadable renders an instant the way the bot quotes it to a prospect:
// "quarta-feira, 10 de dezembro de 2025 às 09:00".
func FormatReadable(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%s, %d de %s de %d às %02d:%02d",
		weekdaysPT[u.Weekday()], u.Day(), monthsPT[u.Month()-1], u.Year(),
		u.Hour(), u.Minute())
}
