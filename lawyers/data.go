package lawyers

// defaultLawyers is the built-in directory listing.
var defaultLawyers = []Lawyer{
	{
		ID:              "l1",
		Name:            "Priya Sharma",
		City:            "New Delhi",
		State:           "Delhi",
		PracticeAreas:   []string{"Corporate Law", "Mergers & Acquisitions", "Venture Capital"},
		ExperienceYears: 15,
		Email:           "priya.sharma@example.com",
		Phone:           "+91 98100 11111",
	},
	{
		ID:              "l2",
		Name:            "Arjun Mehta",
		City:            "Mumbai",
		State:           "Maharashtra",
		PracticeAreas:   []string{"Criminal Law", "Bail Matters"},
		ExperienceYears: 22,
		Email:           "arjun.mehta@example.com",
		Phone:           "+91 98200 22222",
	},
	{
		ID:              "l3",
		Name:            "Kavita Iyer",
		City:            "Bengaluru",
		State:           "Karnataka",
		PracticeAreas:   []string{"Intellectual Property", "Technology Law", "Data Protection"},
		ExperienceYears: 12,
		Email:           "kavita.iyer@example.com",
		Phone:           "+91 98450 33333",
	},
	{
		ID:              "l4",
		Name:            "Rohan Deshpande",
		City:            "Mumbai",
		State:           "Maharashtra",
		PracticeAreas:   []string{"Real Estate", "Property Disputes"},
		ExperienceYears: 18,
		Email:           "rohan.deshpande@example.com",
		Phone:           "+91 98210 44444",
	},
	{
		ID:              "l5",
		Name:            "Ananya Reddy",
		City:            "Hyderabad",
		State:           "Telangana",
		PracticeAreas:   []string{"Family Law", "Divorce", "Child Custody"},
		ExperienceYears: 10,
		Email:           "ananya.reddy@example.com",
		Phone:           "+91 98490 55555",
	},
	{
		ID:              "l6",
		Name:            "Vikram Singh",
		City:            "New Delhi",
		State:           "Delhi",
		PracticeAreas:   []string{"Taxation", "GST", "Corporate Law"},
		ExperienceYears: 25,
		Email:           "vikram.singh@example.com",
		Phone:           "+91 98110 66666",
	},
	{
		ID:              "l7",
		Name:            "Meera Nair",
		City:            "Kochi",
		State:           "Kerala",
		PracticeAreas:   []string{"Labour Law", "Employment Disputes"},
		ExperienceYears: 14,
		Email:           "meera.nair@example.com",
		Phone:           "+91 98470 77777",
	},
	{
		ID:              "l8",
		Name:            "Aditya Kulkarni",
		City:            "Pune",
		State:           "Maharashtra",
		PracticeAreas:   []string{"Consumer Protection", "Civil Litigation"},
		ExperienceYears: 8,
		Email:           "aditya.kulkarni@example.com",
		Phone:           "+91 98220 88888",
	},
	{
		ID:              "l9",
		Name:            "Sneha Banerjee",
		City:            "Kolkata",
		State:           "West Bengal",
		PracticeAreas:   []string{"Constitutional Law", "Public Interest Litigation"},
		ExperienceYears: 20,
		Email:           "sneha.banerjee@example.com",
		Phone:           "+91 98300 99999",
	},
	{
		ID:              "l10",
		Name:            "Rajesh Kumar",
		City:            "Chennai",
		State:           "Tamil Nadu",
		PracticeAreas:   []string{"Banking Law", "Debt Recovery", "Insolvency"},
		ExperienceYears: 17,
		Email:           "rajesh.kumar@example.com",
		Phone:           "+91 98400 10101",
	},
}
