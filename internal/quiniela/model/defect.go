package model

import "fmt"

// Códigos estáveis de defeito estrutural (falhas de construção dos modelos).
const (
	DefectCoverageEmpty      = "coverage_empty"
	DefectCoverageTooMany    = "coverage_too_many"
	DefectCoverageBadSymbol  = "coverage_bad_symbol"
	DefectCoverageDuplicate  = "coverage_duplicate"
	DefectElige8NotEmpty     = "elige8_disabled_not_empty"
	DefectElige8MatchCount   = "elige8_match_count"
	DefectElige8MatchRange   = "elige8_match_out_of_range"
	DefectElige8MatchDup     = "elige8_duplicate_match"
	DefectElige8PickCount    = "elige8_pick_count"
	DefectElige8BadPick      = "elige8_bad_pick"
)

// StructuralDefect é a falha dura de construção de um modelo: o objeto não
// chega a existir. Violações de regra de negócio sobre um grafo bem formado
// são outra categoria e viajam dentro do veredito (ver validator).
type StructuralDefect struct {
	Code   string
	Detail string
}

func (e *StructuralDefect) Error() string {
	return fmt.Sprintf("structural defect [%s]: %s", e.Code, e.Detail)
}

func defectf(code, format string, args ...any) *StructuralDefect {
	return &StructuralDefect{Code: code, Detail: fmt.Sprintf(format, args...)}
}
