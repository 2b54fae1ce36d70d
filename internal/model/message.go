package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeUnknownOption = "UNKNOWN_OPTION"
	CodeUnknownField  = "UNKNOWN_FIELD"
	CodeNegativeValue = "NEGATIVE_VALUE"
	CodeEmptyHorizon  = "EMPTY_HORIZON"
	CodeNonFinite     = "NON_FINITE_RESULT"
)
