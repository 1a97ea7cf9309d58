// Package model defines the patient store (struct-of-arrays), the
// enumerations over patient state, configuration, PSA parameters, and
// aggregate results: the data model the rest of the simulation core
// operates on.
package model

// CardiacState enumerates the acute and chronic cardiac states a
// patient can occupy. Compact integer tags, dense switch dispatch, no
// virtual dispatch anywhere the kernel reads this column.
type CardiacState int8

const (
	NoAcuteEvent CardiacState = iota
	AcuteMI
	PostMI
	AcuteIschemicStroke
	AcuteHemorrhagicStroke
	PostStroke
	TIA
	AcuteHF
	ChronicHF
	CVDeath
	NonCVDeath
)

func (c CardiacState) String() string {
	switch c {
	case NoAcuteEvent:
		return "NoAcuteEvent"
	case AcuteMI:
		return "AcuteMI"
	case PostMI:
		return "PostMI"
	case AcuteIschemicStroke:
		return "AcuteIschemicStroke"
	case AcuteHemorrhagicStroke:
		return "AcuteHemorrhagicStroke"
	case PostStroke:
		return "PostStroke"
	case TIA:
		return "TIA"
	case AcuteHF:
		return "AcuteHF"
	case ChronicHF:
		return "ChronicHF"
	case CVDeath:
		return "CVDeath"
	case NonCVDeath:
		return "NonCVDeath"
	default:
		return "CardiacState(?)"
	}
}

// IsAcute reports whether c is one of the acute-event states that
// short-circuit the transition engine to case-fatality-only sampling.
func (c CardiacState) IsAcute() bool {
	switch c {
	case AcuteMI, AcuteIschemicStroke, AcuteHemorrhagicStroke, AcuteHF:
		return true
	default:
		return false
	}
}

// IsDead reports whether c alone is sufficient to mark a patient dead.
func (c CardiacState) IsDead() bool {
	return c == CVDeath || c == NonCVDeath
}

// RenalState enumerates CKD staging through ESRD and renal death.
type RenalState int8

const (
	CKD1_2 RenalState = iota
	CKD3a
	CKD3b
	CKD4
	ESRD
	RenalDeath
)

func (r RenalState) String() string {
	switch r {
	case CKD1_2:
		return "CKD1-2"
	case CKD3a:
		return "CKD3a"
	case CKD3b:
		return "CKD3b"
	case CKD4:
		return "CKD4"
	case ESRD:
		return "ESRD"
	case RenalDeath:
		return "RenalDeath"
	default:
		return "RenalState(?)"
	}
}

// NeuroState enumerates cognitive status.
type NeuroState int8

const (
	NeuroNormal NeuroState = iota
	MCI
	Dementia
)

func (n NeuroState) String() string {
	switch n {
	case NeuroNormal:
		return "Normal"
	case MCI:
		return "MCI"
	case Dementia:
		return "Dementia"
	default:
		return "NeuroState(?)"
	}
}

// Treatment enumerates the antihypertensive strategy a patient is
// currently assigned to.
type Treatment int8

const (
	Intervention Treatment = iota
	MRA
	StandardCare
)

func (t Treatment) String() string {
	switch t {
	case Intervention:
		return "Intervention"
	case MRA:
		return "MRA"
	case StandardCare:
		return "StandardCare"
	default:
		return "Treatment(?)"
	}
}

// Sex enumerates biological sex as used by the risk equations.
type Sex int8

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Sex(?)"
	}
}

// DippingStatus enumerates the nocturnal SBP dipping pattern.
type DippingStatus int8

const (
	NormalDipper DippingStatus = iota
	NonDipper
	ReverseDipper
)

func (d DippingStatus) String() string {
	switch d {
	case NormalDipper:
		return "Normal"
	case NonDipper:
		return "NonDipper"
	case ReverseDipper:
		return "ReverseDipper"
	default:
		return "DippingStatus(?)"
	}
}

// Multiplier returns the stroke/event risk multiplier for this
// dipping pattern, per §4.2.
func (d DippingStatus) Multiplier() float64 {
	switch d {
	case ReverseDipper:
		return 1.8
	case NonDipper:
		return 1.4
	default:
		return 1.0
	}
}
