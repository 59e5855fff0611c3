package resolve

// The Hong Kong gazetteer as an explicit primary -> secondary -> tertiary
// tree. Location resolution walks the tree from the most specific level
// down so the deepest-match-wins invariant holds as the gazetteer grows.

type gazDistrict struct {
	name  string
	areas []string
}

type gazRegion struct {
	name      string
	districts []gazDistrict
}

var gazetteer = []gazRegion{
	{
		name: "Hong Kong Island",
		districts: []gazDistrict{
			{"Central and Western", []string{"Central", "Sheung Wan", "Sai Ying Pun", "Admiralty", "Mid-Levels", "Kennedy Town"}},
			{"Wan Chai", []string{"Wan Chai", "Causeway Bay", "Happy Valley", "Tai Hang"}},
			{"Eastern", []string{"North Point", "Quarry Bay", "Shau Kei Wan", "Chai Wan", "Sai Wan Ho"}},
			{"Southern", []string{"Aberdeen", "Ap Lei Chau", "Stanley", "Repulse Bay", "Pok Fu Lam"}},
		},
	},
	{
		name: "Kowloon",
		districts: []gazDistrict{
			{"Yau Tsim Mong", []string{"Tsim Sha Tsui", "Yau Ma Tei", "Mong Kok", "Jordan"}},
			{"Sham Shui Po", []string{"Sham Shui Po", "Cheung Sha Wan", "Lai Chi Kok"}},
			{"Kowloon City", []string{"Kowloon Tong", "To Kwa Wan", "Hung Hom", "Ho Man Tin"}},
			{"Wong Tai Sin", []string{"Wong Tai Sin", "Diamond Hill", "San Po Kong"}},
			{"Kwun Tong", []string{"Kwun Tong", "Ngau Tau Kok", "Lam Tin", "Yau Tong"}},
		},
	},
	{
		name: "New Territories",
		districts: []gazDistrict{
			{"Tsuen Wan", []string{"Tsuen Wan", "Ting Kau"}},
			{"Kwai Tsing", []string{"Kwai Chung", "Tsing Yi"}},
			{"Sha Tin", []string{"Sha Tin", "Ma On Shan", "Fo Tan"}},
			{"Tuen Mun", []string{"Tuen Mun", "So Kwun Wat"}},
			{"Yuen Long", []string{"Yuen Long", "Tin Shui Wai", "Kam Tin"}},
			{"Tai Po", []string{"Tai Po", "Tai Wo"}},
			{"North", []string{"Fanling", "Sheung Shui"}},
			{"Sai Kung", []string{"Sai Kung", "Tseung Kwan O", "Hang Hau"}},
			{"Islands", []string{"Tung Chung", "Discovery Bay", "Cheung Chau", "Mui Wo"}},
		},
	},
}
