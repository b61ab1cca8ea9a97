package generator

// Sample data tables backing the generator tokens.

var firstNames = []string{
	"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Edward", "Fiona",
	"Grace", "Henry", "Isla", "Jack", "Kara", "Liam", "Mona", "Noah",
}

var lastNames = []string{
	"Smith", "Doe", "Johnson", "Williams", "Brown", "Davis", "Miller",
	"Wilson", "Moore", "Taylor", "Anderson", "Thomas", "Harris", "Clark",
}

var usernameWords = []string{
	"john", "jane", "bob", "alice", "charlie", "sam", "max", "kim", "lee",
}

var emailDomains = []string{
	"example.com", "test.com", "mock.io", "demo.org", "sample.net",
}

var companies = []string{
	"Acme Corp", "Globex Inc", "Initech", "Umbrella Corp",
	"Stark Industries", "Wayne Enterprises", "Cyberdyne Systems",
	"Tyrell Corp", "Hooli", "Pied Piper",
}

var jobLevels = []string{
	"Junior", "Senior", "Lead", "Principal", "Staff", "Chief",
}

var jobRoles = []string{
	"Engineer", "Designer", "Analyst", "Manager", "Architect",
	"Consultant", "Strategist",
}

var streets = []string{
	"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln", "Maple Dr",
	"Pine Rd", "Lake Way", "Hill Ct", "River Rd",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Seattle", "Denver", "Boston", "Austin", "Portland",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France",
	"Japan", "Australia", "Brazil", "Netherlands", "Spain",
}

var words = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "theta",
	"lambda", "sigma", "omega",
}

var sentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Lorem ipsum dolor sit amet.",
	"All systems operational.",
	"Data synchronized successfully.",
	"Request processed without incident.",
}

var colors = []string{
	"red", "orange", "yellow", "green", "blue", "indigo", "violet",
	"teal", "maroon", "silver",
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
}
