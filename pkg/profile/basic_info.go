package profile

// BasicInfo holds the company identity, address and digital presence.
type BasicInfo struct {
	CompanyName    string      `json:"companyName" yaml:"companyName" validate:"min=2,max=100,name_chars"`
	TradingName    string      `json:"tradingName" yaml:"tradingName" validate:"min=2,max=100,name_chars"`
	CNPJ           string      `json:"cnpj" yaml:"cnpj" validate:"cnpj"`
	Address        Address     `json:"address" yaml:"address"`
	Website        string      `json:"website" yaml:"website" validate:"website"`
	SocialMedia    SocialMedia `json:"socialMedia" yaml:"socialMedia"`
	MarketSegment  string      `json:"marketSegment" yaml:"marketSegment" validate:"option=marketSegment"`
	AnnualRevenue  string      `json:"annualRevenue" yaml:"annualRevenue" validate:"option=annualRevenue"`
	RevenueStreams []string    `json:"revenueStreams" yaml:"revenueStreams" validate:"min=1,max=6,unique,dive,option=revenueStreams"`
}

// Address is a Brazilian postal address.
type Address struct {
	Street       string `json:"street" yaml:"street" validate:"min=3,max=100,street_chars"`
	Number       string `json:"number" yaml:"number" validate:"min=1,max=10,house_number"`
	Complement   string `json:"complement,omitempty" yaml:"complement,omitempty" validate:"max=50"`
	Neighborhood string `json:"neighborhood" yaml:"neighborhood" validate:"min=2,max=50"`
	City         string `json:"city" yaml:"city" validate:"min=2,max=50,letters"`
	State        string `json:"state" yaml:"state" validate:"uf"`
	ZipCode      string `json:"zipCode" yaml:"zipCode" validate:"cep"`
}

// SocialMedia links are optional; blank entries are dropped on submit.
type SocialMedia struct {
	YouTube     string `json:"youtube,omitempty" yaml:"youtube,omitempty" validate:"omitempty,social"`
	Instagram   string `json:"instagram,omitempty" yaml:"instagram,omitempty" validate:"omitempty,social"`
	OtherSocial string `json:"otherSocial,omitempty" yaml:"otherSocial,omitempty" validate:"omitempty,website"`
}
