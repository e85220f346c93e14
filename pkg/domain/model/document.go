package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hazop-lab/hazgrid/pkg/domain/types"
)

// ErrInvalidDocument is returned when imported data is neither a hazard
// document nor a legacy bare hazard array. This is a user-facing input
// error: the import is reported and not applied.
var ErrInvalidDocument = goerr.New("document has neither a hazard array nor a hazards field")

// ErrInvalidMatrixConfig is returned when a matrix interchange document
// cannot be parsed.
var ErrInvalidMatrixConfig = goerr.New("risk matrix configuration is malformed")

// Document is the persisted and interchanged form of the whole workspace:
// the hazard list plus its risk matrix configuration.
type Document struct {
	Hazards []*Hazard   `json:"hazards"`
	Matrix  *RiskMatrix `json:"riskMatrix"`
}

// Normalize fills missing parts with safe defaults.
func (d *Document) Normalize() {
	if d.Hazards == nil {
		d.Hazards = []*Hazard{}
	}
	for _, h := range d.Hazards {
		h.Normalize()
	}
	if d.Matrix == nil {
		d.Matrix = DefaultRiskMatrix()
	} else {
		d.Matrix.Normalize()
	}
}

// DecodeDocument parses a hazard document. The current format is an object
// with "hazards" and "riskMatrix"; a legacy bare array of hazards is also
// accepted, in which case the default matrix is supplied.
func DecodeDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, goerr.Wrap(ErrInvalidDocument, "empty input")
	}

	switch trimmed[0] {
	case '{':
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse hazard document")
		}
		if doc.Hazards == nil {
			return nil, goerr.Wrap(ErrInvalidDocument, "object form requires a hazards field")
		}
		doc.Normalize()
		return &doc, nil

	case '[':
		var hazards []*Hazard
		if err := json.Unmarshal(trimmed, &hazards); err != nil {
			return nil, goerr.Wrap(err, "failed to parse legacy hazard array")
		}
		doc := &Document{Hazards: hazards}
		doc.Normalize()
		return doc, nil

	default:
		return nil, goerr.Wrap(ErrInvalidDocument, "unrecognized document shape")
	}
}

// EncodeDocument serializes a document in the current object form.
func EncodeDocument(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode hazard document")
	}
	return data, nil
}

// MatrixConfigDoc is the import/export interchange format for the risk
// matrix configuration.
type MatrixConfigDoc struct {
	LikelihoodDescriptions []LikelihoodLevel                                       `json:"likelihoodDescriptions"`
	SeverityLevels         []SeverityLevel                                         `json:"severityLevels"`
	SeverityDescriptions   map[types.SeverityID]map[types.SeverityCategory]string `json:"severityDescriptions"`
	RiskLevelDescriptions  []RiskLevel                                             `json:"riskLevelDescriptions"`
	Matrix                 map[string]types.RiskLevelID                            `json:"matrix,omitempty"`
}

// DecodeMatrixConfig parses a matrix interchange document and builds the
// matrix. When the document carries no explicit cell mapping, the mapping
// is regenerated from the default rule. Custom cells referencing unknown
// risk level IDs are dropped silently.
func DecodeMatrixConfig(data []byte) (*RiskMatrix, error) {
	var doc MatrixConfigDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(ErrInvalidMatrixConfig, err.Error())
	}

	m := &RiskMatrix{
		Likelihood:           doc.LikelihoodDescriptions,
		Severity:             doc.SeverityLevels,
		Levels:               doc.RiskLevelDescriptions,
		SeverityDescriptions: doc.SeverityDescriptions,
	}
	m.Normalize()
	m.Rebuild()
	if doc.Matrix != nil {
		m.ApplyCells(doc.Matrix)
	}
	return m, nil
}

// EncodeMatrixConfig serializes a matrix in the interchange format,
// including the resolved cell mapping.
func EncodeMatrixConfig(m *RiskMatrix) ([]byte, error) {
	doc := MatrixConfigDoc{
		LikelihoodDescriptions: m.Likelihood,
		SeverityLevels:         m.Severity,
		SeverityDescriptions:   m.SeverityDescriptions,
		RiskLevelDescriptions:  m.Levels,
		Matrix:                 m.Cells,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode risk matrix configuration")
	}
	return data, nil
}
