package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hmse/risk"
)

func TestAnnualEGFRDeclineCappedAt15(t *testing.T) {
	in := risk.EGFRDeclineInputs{
		Age: 80, EGFR: 20, UACR: 5000, SBP: 220, Diabetes: true, UseKFREModel: true, KFRE2yr: 0.9,
	}
	assert.LessOrEqual(t, risk.AnnualEGFRDecline(in), 15.0)
}

func TestAnnualEGFRDeclineNeverNegative(t *testing.T) {
	in := risk.EGFRDeclineInputs{Age: 20, EGFR: 100, UACR: 0, SBP: 100}
	assert.GreaterOrEqual(t, risk.AnnualEGFRDecline(in), 0.0)
}

func TestAnnualEGFRDeclineSGLT2iReducesRate(t *testing.T) {
	base := risk.EGFRDeclineInputs{Age: 65, EGFR: 50, UACR: 100, SBP: 150, Diabetes: true}
	withSGLT2i := base
	withSGLT2i.OnSGLT2i = true

	assert.Less(t, risk.AnnualEGFRDecline(withSGLT2i), risk.AnnualEGFRDecline(base))
}

func TestAnnualEGFRDeclineUsesKFREBucketsBelow60(t *testing.T) {
	highRisk := risk.EGFRDeclineInputs{Age: 65, EGFR: 40, SBP: 120, UseKFREModel: true, KFRE2yr: 0.5}
	lowRisk := risk.EGFRDeclineInputs{Age: 65, EGFR: 40, SBP: 120, UseKFREModel: true, KFRE2yr: 0.01}
	assert.Greater(t, risk.AnnualEGFRDecline(highRisk), risk.AnnualEGFRDecline(lowRisk))
}

func TestAnnualEGFRDeclineSBPExcessIncreasesRate(t *testing.T) {
	lowSBP := risk.EGFRDeclineInputs{Age: 65, EGFR: 70, SBP: 120}
	highSBP := risk.EGFRDeclineInputs{Age: 65, EGFR: 70, SBP: 180}
	assert.Greater(t, risk.AnnualEGFRDecline(highSBP), risk.AnnualEGFRDecline(lowSBP))
}
