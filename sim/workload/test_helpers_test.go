package workload

import "github.com/schedsim/schedsim/sim"

func policyCfg(name string, quantum int64) sim.PolicyConfig {
	return sim.NewPolicyConfig(name, quantum)
}
