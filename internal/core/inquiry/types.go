package inquiry

// Field names a result field by its wire name
type Field string

// Result field wire names
const (
	FieldDeparturePort Field = "departurePort"
	FieldDischargePort Field = "dischargePort"
	FieldShipCompany   Field = "shipCompany"
	FieldContainerInfo Field = "containerInfo"
	FieldWeight        Field = "weight"
	FieldVolume        Field = "volume"
	FieldTransitType   Field = "transitType"
	FieldRoute         Field = "route"
	FieldGoodsType     Field = "goodsType"
	FieldServiceTerms  Field = "serviceTerms"
)

// Transit type values
const (
	TransitDirect       = "直达"
	TransitTransshipped = "中转"
)

// ContainerLine is one "<count> x <type>" mention
type ContainerLine struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Result is the sparse extraction record. A zero field means its recognizer did not match;
// recognizers never produce empty values, so zero is unambiguous
type Result struct {
	DeparturePort string          `json:"departurePort,omitempty"`
	DischargePort string          `json:"dischargePort,omitempty"`
	ShipCompany   string          `json:"shipCompany,omitempty"`
	ContainerInfo []ContainerLine `json:"containerInfo,omitempty"`
	Weight        string          `json:"weight,omitempty"`
	Volume        string          `json:"volume,omitempty"`
	TransitType   string          `json:"transitType,omitempty"`
	Route         string          `json:"route,omitempty"`
	GoodsType     string          `json:"goodsType,omitempty"`
	ServiceTerms  string          `json:"serviceTerms,omitempty"`
}

// Empty reports whether no field was recognized
func (r Result) Empty() bool { return len(r.Fields()) == 0 }

// Fields lists the recognized fields in declaration order
func (r Result) Fields() []Field {
	var out []Field
	add := func(ok bool, f Field) {
		if ok {
			out = append(out, f)
		}
	}
	add(r.DeparturePort != "", FieldDeparturePort)
	add(r.DischargePort != "", FieldDischargePort)
	add(r.ShipCompany != "", FieldShipCompany)
	add(len(r.ContainerInfo) > 0, FieldContainerInfo)
	add(r.Weight != "", FieldWeight)
	add(r.Volume != "", FieldVolume)
	add(r.TransitType != "", FieldTransitType)
	add(r.Route != "", FieldRoute)
	add(r.GoodsType != "", FieldGoodsType)
	add(r.ServiceTerms != "", FieldServiceTerms)
	return out
}

// union copies every present field of p into r. Recognizers own disjoint fields,
// so this never overwrites another recognizer's output
func (r *Result) union(p Result) {
	if p.DeparturePort != "" {
		r.DeparturePort = p.DeparturePort
	}
	if p.DischargePort != "" {
		r.DischargePort = p.DischargePort
	}
	if p.ShipCompany != "" {
		r.ShipCompany = p.ShipCompany
	}
	if len(p.ContainerInfo) > 0 {
		r.ContainerInfo = append(r.ContainerInfo, p.ContainerInfo...)
	}
	if p.Weight != "" {
		r.Weight = p.Weight
	}
	if p.Volume != "" {
		r.Volume = p.Volume
	}
	if p.TransitType != "" {
		r.TransitType = p.TransitType
	}
	if p.Route != "" {
		r.Route = p.Route
	}
	if p.GoodsType != "" {
		r.GoodsType = p.GoodsType
	}
	if p.ServiceTerms != "" {
		r.ServiceTerms = p.ServiceTerms
	}
}
