package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text.
const (
	msgProblem      = "problem %s (%s)"
	msgAssignment   = "assignment: %s"
	msgPairs        = "pairs: %s"
	msgTotal        = "total: %s"
	msgNone         = "none"
	msgErrorLine    = "error: %s"
	msgCheckOK      = "problem %s: ok (%d×%[2]d)"
	msgCheckFailed  = "problem %s: %s"
	msgBadCell      = "problem %s: cell (%d, %d) %q is not a number; all cells must be valid numbers"
	msgShape        = "the matrix must be square (%d×%[1]d): row %d has %d entries"
	msgNotSquare    = "the matrix must be square"
	msgValue        = "the matrix contains an invalid value %s at cell (%d, %d)"
	msgUnsolvableAt = "cannot maximize: the matrix contains an infinite value at cell (%d, %d)"
	msgUnsolvable   = "cannot maximize: the matrix maximum is infinite"
	msgTooLarge     = "the matrix is %d×%d, the limit is %d"
	msgNoMatrix     = "no matrix found in the input"
)

var russian = map[string]string{
	msgProblem:      "задача %s (%s)",
	msgAssignment:   "назначения: %s",
	msgPairs:        "пары: %s",
	msgTotal:        "общая стоимость: %s",
	msgNone:         "нет",
	msgErrorLine:    "ошибка: %s",
	msgCheckOK:      "задача %s: ок (%d×%[2]d)",
	msgCheckFailed:  "задача %s: %s",
	msgBadCell:      "задача %s: элемент (%d, %d) %q не является числом; убедитесь, что все поля заполнены корректными числами",
	msgShape:        "матрица должна быть квадратной (%d×%[1]d): строка %d содержит %d элементов",
	msgNotSquare:    "матрица должна быть квадратной",
	msgValue:        "матрица содержит недопустимое значение %s в элементе (%d, %d)",
	msgUnsolvableAt: "невозможно решить задачу на максимум: бесконечное значение в элементе (%d, %d)",
	msgUnsolvable:   "невозможно решить задачу на максимум: максимум матрицы бесконечен",
	msgTooLarge:     "размер матрицы %d×%d превышает допустимый %d",
	msgNoMatrix:     "во входных данных не найдена матрица",
}

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ru := range russian {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.Russian, key, ru); err != nil {
			panic(err)
		}
	}

	return b
}
