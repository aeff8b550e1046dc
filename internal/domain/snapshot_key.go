package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SnapshotKeyLayout - формат YYYYMMDDHHMMSS, которым исходные файлы
// именуют каждый снимок доступности такси
const SnapshotKeyLayout = "20060102150405"

const snapshotKeyWidth = len(SnapshotKeyLayout)

// Строки с ключом раньше FirstValidSnapshot или внутри окна
// [BadWindowStart, BadWindowEnd] (границы включены) отбрасываются при загрузке.
const (
	FirstValidSnapshot SnapshotKey = 20160916130000
	BadWindowStart     SnapshotKey = 20171016110000
	BadWindowEnd       SnapshotKey = 20171129090000
)

var ErrInvalidSnapshotKey = errors.New("invalid snapshot key")

// SnapshotKey - числовая форма идентификатора снимка. Ключ всегда ровно из
// 14 цифр, поэтому числовой порядок совпадает с хронологическим.
type SnapshotKey uint64

// ParseSnapshotKey проверяет идентификатор и возвращает ключ вместе с
// закодированным в нем временем
func ParseSnapshotKey(raw string) (SnapshotKey, time.Time, error) {
	s := strings.TrimSpace(raw)
	if len(s) != snapshotKeyWidth {
		return 0, time.Time{}, fmt.Errorf("%w: %q must have %d digits", ErrInvalidSnapshotKey, raw, snapshotKeyWidth)
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidSnapshotKey, raw)
	}

	ts, err := time.Parse(SnapshotKeyLayout, s)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidSnapshotKey, raw, err)
	}

	return SnapshotKey(n), ts, nil
}

// Excluded сообщает, отбрасывается ли ключ начальной границей или окном
// плохих данных. Сравнение идет по сырому ключу.
func (k SnapshotKey) Excluded() bool {
	if k < FirstValidSnapshot {
		return true
	}
	return k >= BadWindowStart && k <= BadWindowEnd
}

func (k SnapshotKey) String() string {
	return fmt.Sprintf("%0*d", snapshotKeyWidth, uint64(k))
}
