package flowshop

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadInstance читает инстанцию flow-shop из текстового файла.
// Формат: первая непустая строка содержит количество работ и машин
// (лишние значения в заголовке игнорируются), далее по одной строке
// времен обработки на каждую работу. Пустые строки пропускаются,
// содержимое после матрицы игнорируется.
func LoadInstance(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := ParseInstance(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// ParseInstance разбирает инстанцию в формате LoadInstance.
func ParseInstance(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)

	header := ""
	for sc.Scan() {
		header = strings.TrimSpace(sc.Text())
		if header != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if header == "" {
		return nil, fmt.Errorf("instance file is empty")
	}

	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, fmt.Errorf("first line must contain job and machine counts (got %q)", header)
	}
	jobs, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid job count %q", fields[0])
	}
	machines, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid machine count %q", fields[1])
	}
	if jobs <= 0 || machines <= 0 {
		return nil, fmt.Errorf("jobs and machines must be > 0 (got %d and %d)", jobs, machines)
	}

	pt := make([]int, 0, jobs*machines)
	rows := 0
	for rows < jobs && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) != machines {
			return nil, fmt.Errorf("row %d: expected %d processing times (got %d)", rows+1, machines, len(tokens))
		}
		for _, tok := range tokens {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid processing time %q", rows+1, tok)
			}
			if v < 0 {
				return nil, fmt.Errorf("row %d: processing time must be >= 0 (got %d)", rows+1, v)
			}
			pt = append(pt, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows < jobs {
		return nil, fmt.Errorf("expected %d job rows (got %d)", jobs, rows)
	}

	return NewInstance(jobs, machines, pt)
}
