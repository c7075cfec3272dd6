package lattice

import "math"

// binomialPMF returns C(n,k) * p^k * (1-p)^(n-k). The binomial coefficient
// is evaluated through log-gamma so maturities in the hundreds do not
// overflow a direct factorial. A p outside [0,1] is evaluated as given;
// the result is then meaningless but defined, which is the contract.
func binomialPMF(k, n int, p float64) float64 {
	if k < 0 || k > n {
		return 0.0
	}
	logChoose := lgamma(float64(n)+1) - lgamma(float64(k)+1) - lgamma(float64(n-k)+1)
	return math.Exp(logChoose) * math.Pow(p, float64(k)) * math.Pow(1.0-p, float64(n-k))
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
