package risk

// ESRDMortalityBaseAnnual is the shared base annual non-CV mortality
// rate used both as an input to the chronic CVDeath increment in the
// transition engine and as the base rate for the dedicated ESRD
// non-CV mortality sampling in the kernel's time-advance step.
const ESRDMortalityBaseAnnual = 0.15
