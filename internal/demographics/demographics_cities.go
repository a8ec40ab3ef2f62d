package demographics

import "strings"

type CityInfo struct {
	Name      string
	Province  string
	Latitude  float64
	Longitude float64
}

var cities = []CityInfo{
	{"Karachi", "Sindh", 24.8607, 67.0011},
	{"Hyderabad", "Sindh", 25.3960, 68.3578},
	{"Sukkur", "Sindh", 27.7052, 68.8574},
	{"Larkana", "Sindh", 27.5570, 68.2264},
	{"Nawabshah", "Sindh", 26.2442, 68.4100},
	{"Mirpur Khas", "Sindh", 25.5276, 69.0111},
	{"Lahore", "Punjab", 31.5204, 74.3587},
	{"Faisalabad", "Punjab", 31.4504, 73.1350},
	{"Rawalpindi", "Punjab", 33.5651, 73.0169},
	{"Multan", "Punjab", 30.1575, 71.5249},
	{"Gujranwala", "Punjab", 32.1877, 74.1945},
	{"Sialkot", "Punjab", 32.4945, 74.5229},
	{"Bahawalpur", "Punjab", 29.3956, 71.6836},
	{"Sargodha", "Punjab", 32.0836, 72.6711},
	{"Sheikhupura", "Punjab", 31.7167, 73.9850},
	{"Rahim Yar Khan", "Punjab", 28.4202, 70.2952},
	{"Jhang", "Punjab", 31.2781, 72.3317},
	{"Gujrat", "Punjab", 32.5731, 74.1005},
	{"Sahiwal", "Punjab", 30.6682, 73.1114},
	{"Dera Ghazi Khan", "Punjab", 30.0561, 70.6348},
	{"Islamabad", "Islamabad Capital Territory", 33.6844, 73.0479},
	{"Peshawar", "Khyber Pakhtunkhwa", 34.0151, 71.5249},
	{"Mardan", "Khyber Pakhtunkhwa", 34.1986, 72.0404},
	{"Abbottabad", "Khyber Pakhtunkhwa", 34.1688, 73.2215},
	{"Swat", "Khyber Pakhtunkhwa", 35.2227, 72.4258},
	{"Kohat", "Khyber Pakhtunkhwa", 33.5869, 71.4429},
	{"Dera Ismail Khan", "Khyber Pakhtunkhwa", 31.8314, 70.9019},
	{"Quetta", "Balochistan", 30.1798, 66.9750},
	{"Gwadar", "Balochistan", 25.1216, 62.3254},
	{"Turbat", "Balochistan", 26.0023, 63.0440},
	{"Khuzdar", "Balochistan", 27.8000, 66.6167},
	{"Gilgit", "Gilgit-Baltistan", 35.9208, 74.3144},
	{"Skardu", "Gilgit-Baltistan", 35.2971, 75.6333},
	{"Muzaffarabad", "Azad Kashmir", 34.3700, 73.4711},
	{"Mirpur", "Azad Kashmir", 33.1478, 73.7518},
}

var cityIndex = func() map[string]CityInfo {
	m := make(map[string]CityInfo, len(cities))
	for _, c := range cities {
		m[cityKey(c.Name)] = c
	}
	return m
}()

func cityKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// LookupCity matches case- and whitespace-insensitively.
func LookupCity(name string) (CityInfo, bool) {
	c, ok := cityIndex[cityKey(name)]
	return c, ok
}
