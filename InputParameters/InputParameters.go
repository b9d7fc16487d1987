package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/netshock/ensemble"
	"github.com/notargets/netshock/model_problems/Burgers"
	"github.com/notargets/netshock/network"
)

// Parameters for a network ensemble obtained from the YAML input file
type InputParametersGraph struct {
	Title         string  `json:"Title"`
	Kind          string  `json:"Kind"` // er, ba, modular or assortative
	Nodes         int     `json:"Nodes"`
	P             float64 `json:"P"`      // Erdos-Renyi edge probability
	Attach        int     `json:"Attach"` // Barabasi-Albert edges per new node
	Communities   int     `json:"Communities"`
	PIn           float64 `json:"PIn"`
	POut          float64 `json:"POut"`
	Target        float64 `json:"TargetAssortativity"`
	RewireTol     float64 `json:"RewireTolerance"`
	RewireMax     int     `json:"RewireAttempts"`
	Trials        int     `json:"Trials"`
	Workers       int     `json:"Workers"`
	Seed          uint64  `json:"Seed"`
	FreshTopology bool    `json:"FreshTopology"`
	DT            float64 `json:"DT"`
	Steps         int     `json:"Steps"`
	U0            float64 `json:"U0"`
	Epsilon       float64 `json:"Epsilon"`
	Tolerance     float64 `json:"Tolerance"`
	Clamp         string  `json:"Clamp"` // none, wide, narrow or min:max
	FluxType      string  `json:"FluxType"`
}

func NewInputParametersGraph() (ip *InputParametersGraph) {
	var (
		p  = Burgers.DefaultParams()
		ro = network.DefaultRewireOptions(0.3)
	)
	ip = &InputParametersGraph{
		Title:       "Network shock",
		Kind:        "er",
		Nodes:       200,
		P:           0.03,
		Attach:      3,
		Communities: 4,
		PIn:         0.1,
		POut:        0.005,
		Target:      ro.Target,
		RewireTol:   ro.Tolerance,
		RewireMax:   ro.MaxAttempts,
		Trials:      20,
		Seed:        1,
		DT:          p.DT,
		Steps:       p.Steps,
		U0:          p.U0,
		Epsilon:     1.e-3,
		Tolerance:   0.01,
		Clamp:       "none",
		FluxType:    "Godunov",
	}
	return
}

// Parse overlays the YAML in data on the current values
func (ip *InputParametersGraph) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersGraph) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Graph Kind\n", ip.Kind)
	fmt.Printf("%d\t\t\t= Nodes\n", ip.Nodes)
	switch ip.Kind {
	case "er":
		fmt.Printf("%8.5f\t\t= P\n", ip.P)
	case "ba":
		fmt.Printf("%d\t\t\t= Attach\n", ip.Attach)
	case "modular":
		fmt.Printf("%d\t\t\t= Communities\n", ip.Communities)
		fmt.Printf("%8.5f\t\t= PIn\n", ip.PIn)
		fmt.Printf("%8.5f\t\t= POut\n", ip.POut)
	case "assortative":
		fmt.Printf("%d\t\t\t= Attach\n", ip.Attach)
		fmt.Printf("%8.5f\t\t= Target Assortativity\n", ip.Target)
	}
	fmt.Printf("%d\t\t\t= Trials\n", ip.Trials)
	fmt.Printf("%d\t\t\t= Seed\n", ip.Seed)
	fmt.Printf("%v\t\t\t= Fresh Topology\n", ip.FreshTopology)
	fmt.Printf("%8.5f\t\t= DT\n", ip.DT)
	fmt.Printf("%d\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("%8.5f\t\t= U0\n", ip.U0)
	fmt.Printf("%8.5f\t\t= Epsilon\n", ip.Epsilon)
	fmt.Printf("%8.5f\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%s]\t\t\t= Clamp\n", ip.Clamp)
	fmt.Printf("[%s]\t\t= Flux Type\n", ip.FluxType)
}

func (ip *InputParametersGraph) GeneratorSpec() (gs network.GeneratorSpec, err error) {
	var gk network.GraphKind
	if gk, err = network.NewGraphKind(ip.Kind); err != nil {
		return
	}
	gs = network.GeneratorSpec{
		Kind:        gk,
		Nodes:       ip.Nodes,
		P:           ip.P,
		M:           ip.Attach,
		Communities: ip.Communities,
		PIn:         ip.PIn,
		POut:        ip.POut,
		Rewire: network.RewireOptions{
			Target:      ip.Target,
			Tolerance:   ip.RewireTol,
			MaxAttempts: ip.RewireMax,
		},
	}
	err = gs.Validate()
	return
}

// Params returns the per run parameters, the source is left for the ensemble to draw
func (ip *InputParametersGraph) Params() (p Burgers.Params, err error) {
	if p, err = newParams(ip.DT, ip.Steps, ip.Clamp, ip.FluxType); err != nil {
		return
	}
	p.U0 = ip.U0
	return
}

func (ip *InputParametersGraph) EnsembleConfig() (cfg ensemble.Config, err error) {
	var p Burgers.Params
	if p, err = ip.Params(); err != nil {
		return
	}
	cfg = ensemble.Config{
		Trials:        ip.Trials,
		Workers:       ip.Workers,
		Seed:          ip.Seed,
		FreshTopology: ip.FreshTopology,
		Epsilon:       ip.Epsilon,
		Tolerance:     ip.Tolerance,
		Params:        p,
	}
	err = cfg.Validate()
	return
}

// Parameters for a 1D Riemann problem obtained from the YAML input file
type InputParameters1D struct {
	Title    string  `json:"Title"`
	Cells    int     `json:"Cells"`
	XMin     float64 `json:"XMin"`
	XMax     float64 `json:"XMax"`
	X0       float64 `json:"X0"` // Initial discontinuity location
	UL       float64 `json:"UL"`
	UR       float64 `json:"UR"`
	DT       float64 `json:"DT"`
	Steps    int     `json:"Steps"`
	Clamp    string  `json:"Clamp"`
	FluxType string  `json:"FluxType"`
}

func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Title:    "Riemann problem",
		Cells:    400,
		XMin:     0,
		XMax:     1,
		X0:       0.3,
		UL:       1,
		UR:       0,
		DT:       0.001,
		Steps:    401,
		Clamp:    "none",
		FluxType: "Godunov",
	}
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%d\t\t\t= Cells\n", ip.Cells)
	fmt.Printf("[%8.5f,%8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("%8.5f\t\t= X0\n", ip.X0)
	fmt.Printf("%8.5f\t\t= UL\n", ip.UL)
	fmt.Printf("%8.5f\t\t= UR\n", ip.UR)
	fmt.Printf("%8.5f\t\t= DT\n", ip.DT)
	fmt.Printf("%d\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime())
	fmt.Printf("[%s]\t\t\t= Clamp\n", ip.Clamp)
	fmt.Printf("[%s]\t\t= Flux Type\n", ip.FluxType)
}

func (ip *InputParameters1D) FinalTime() float64 {
	return ip.DT * float64(ip.Steps-1)
}

func (ip *InputParameters1D) Grid() (grid Burgers.Grid1D, err error) {
	if ip.Cells < 1 || !(ip.XMax > ip.XMin) {
		err = fmt.Errorf("grid of %d cells on [%v,%v]: %w", ip.Cells, ip.XMin, ip.XMax, Burgers.ErrInvalidParameter)
		return
	}
	grid = Burgers.NewGrid1D(ip.XMin, ip.XMax, ip.Cells)
	return
}

func (ip *InputParameters1D) Params() (p Burgers.Params, err error) {
	if p, err = newParams(ip.DT, ip.Steps, ip.Clamp, ip.FluxType); err != nil {
		return
	}
	err = p.Validate(ip.Cells)
	return
}

func newParams(dt float64, steps int, clamp, flux string) (p Burgers.Params, err error) {
	p = Burgers.Params{DT: dt, Steps: steps}
	if p.Clamp, err = Burgers.NewClampPolicy(clamp); err != nil {
		return
	}
	if p.Flux, err = Burgers.NewFluxType(flux); err != nil {
		return
	}
	return
}
