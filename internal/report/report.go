package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fsspSolver/internal/flowshop"
	"fsspSolver/internal/opt"
)

// FormatSequence — последовательность работ в виде строки, работы
// нумеруются с единицы.
func FormatSequence(perm []int) string {
	parts := make([]string, len(perm))
	for i, job := range perm {
		parts[i] = strconv.Itoa(job + 1)
	}
	return strings.Join(parts, " ")
}

// WriteRunReport записывает итоговый отчёт запуска в каталог outputDir.
// Имя файла строится из имени экземпляра: resultado_<имя>.txt.
// Возвращается путь записанного файла.
func WriteRunReport(outputDir, instancePath string, inst *flowshop.Instance, res opt.Result) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}

	base := filepath.Base(instancePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	path := filepath.Join(outputDir, "resultado_"+base+".txt")

	var b strings.Builder
	fmt.Fprintf(&b, "Instancia: %s\n", instancePath)
	fmt.Fprintf(&b, "Tarefas: %d\n", inst.Jobs)
	fmt.Fprintf(&b, "Maquinas: %d\n", inst.Machines)
	fmt.Fprintf(&b, "Melhor Makespan: %d\n", res.Makespan)
	fmt.Fprintf(&b, "Melhor Sequencia: %s\n", FormatSequence(res.Permutation))
	fmt.Fprintf(&b, "Geracao do Melhor: %d\n", res.BestIteration)
	fmt.Fprintf(&b, "Avaliacoes: %d\n", res.Evaluations)
	fmt.Fprintf(&b, "Tempo de Execucao (segundos): %.4f\n", res.Duration.Seconds())

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
