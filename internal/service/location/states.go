package location

// Static state/district reference data. Local bodies are not listed here;
// they are derived from reported issues.
var stateNames = []string{
	"Kerala",
	"Tamil Nadu",
	"Maharashtra",
	"Karnataka",
	"Andhra Pradesh",
	"Telangana",
	"Gujarat",
	"Rajasthan",
	"Uttar Pradesh",
	"West Bengal",
}

var districtsByState = map[string][]string{
	"Kerala": {
		"Thiruvananthapuram", "Kollam", "Pathanamthitta", "Alappuzha",
		"Kottayam", "Idukki", "Ernakulam", "Thrissur", "Palakkad",
		"Malappuram", "Kozhikode", "Wayanad", "Kannur", "Kasaragod",
	},
	"Tamil Nadu": {
		"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem",
		"Tirunelveli", "Tiruppur", "Vellore", "Erode", "Thoothukkudi",
	},
	"Maharashtra": {
		"Mumbai", "Pune", "Nagpur", "Nashik", "Thane", "Aurangabad",
		"Solapur", "Amravati", "Kolhapur", "Sangli",
	},
	"Karnataka": {
		"Bengaluru", "Mysuru", "Hubballi-Dharwad", "Mangaluru", "Belagavi",
		"Kalaburagi", "Davanagere", "Ballari", "Vijayapura", "Shivamogga",
	},
	"Andhra Pradesh": {
		"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool",
		"Tirupati", "Kakinada", "Rajahmundry", "Kadapa", "Anantapur",
	},
	"Telangana": {
		"Hyderabad", "Warangal", "Nizamabad", "Khammam", "Karimnagar",
		"Mahbubnagar", "Rangareddy", "Medak", "Nalgonda", "Adilabad",
	},
	"Gujarat": {
		"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar",
		"Jamnagar", "Gandhinagar", "Junagadh", "Anand", "Nadiad",
	},
	"Rajasthan": {
		"Jaipur", "Jodhpur", "Udaipur", "Kota", "Ajmer", "Bikaner",
		"Alwar", "Bharatpur", "Sikar", "Pali",
	},
	"Uttar Pradesh": {
		"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Varanasi", "Meerut",
		"Allahabad", "Bareilly", "Aligarh", "Moradabad",
	},
	"West Bengal": {
		"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri",
		"Bardhaman", "Malda", "Baharampur", "Habra", "Kharagpur",
	},
}
