package transition

import "math"

// ComposeLegacyCap implements the legacy competing-risk cap: if the
// sum of all seven probabilities exceeds 0.95, scale them uniformly
// so the sum is exactly 0.95.
func ComposeLegacyCap(p *Probs) {
	sum := p.Sum()
	if sum <= 0.95 {
		return
	}
	scale := 0.95 / sum
	p.CVDeath *= scale
	p.NonCVDeath *= scale
	p.MI *= scale
	p.HemorrhagicStroke *= scale
	p.IschemicStroke *= scale
	p.HF *= scale
	p.TIA *= scale
}

// ComposeProperHazard implements the proper cumulative-hazard
// composition: each probability becomes a hazard h=-ln(1-p), hazards
// sum to H, P(any event)=1-exp(-H), and that total is redistributed
// among causes proportionally to h_k/H. If H is zero, p is left all
// zero.
func ComposeProperHazard(p *Probs) {
	hazards := [7]float64{
		hazardOf(p.CVDeath),
		hazardOf(p.NonCVDeath),
		hazardOf(p.MI),
		hazardOf(p.HemorrhagicStroke),
		hazardOf(p.IschemicStroke),
		hazardOf(p.HF),
		hazardOf(p.TIA),
	}
	var H float64
	for _, h := range hazards {
		H += h
	}
	if H == 0 {
		return
	}
	pAny := 1 - math.Exp(-H)
	p.CVDeath = pAny * hazards[0] / H
	p.NonCVDeath = pAny * hazards[1] / H
	p.MI = pAny * hazards[2] / H
	p.HemorrhagicStroke = pAny * hazards[3] / H
	p.IschemicStroke = pAny * hazards[4] / H
	p.HF = pAny * hazards[5] / H
	p.TIA = pAny * hazards[6] / H
}

func hazardOf(prob float64) float64 {
	if prob <= 0 {
		return 0
	}
	if prob >= 1 {
		prob = 1 - 1e-12
	}
	return -math.Log(1 - prob)
}

// Compose applies the configured composition mode: proper
// cumulative-hazard when useCompetingRisks is true, the legacy cap
// otherwise.
func Compose(p *Probs, useCompetingRisks bool) {
	if useCompetingRisks {
		ComposeProperHazard(p)
	} else {
		ComposeLegacyCap(p)
	}
}
