package gen

// Display-name tables for synthetic users. Token tables rather than a faker
// dependency so the draws stay on the shared deterministic stream.

var firstNames = []string{
	"Aaron", "Alice", "Amara", "Andre", "Bianca", "Brandon", "Carla", "Chen",
	"Daniel", "Diego", "Elena", "Emil", "Fatima", "Felix", "Grace", "Hassan",
	"Ingrid", "Ivan", "Jasmine", "Jonas", "Kira", "Liam", "Maja", "Marcus",
	"Nadia", "Noel", "Olga", "Omar", "Priya", "Rafael", "Sofia", "Tomas",
	"Uma", "Victor", "Wen", "Yusuf", "Zara", "Zoe",
}

var lastNames = []string{
	"Abbott", "Alvarez", "Bauer", "Becker", "Chan", "Costa", "Dubois",
	"Eriksen", "Fischer", "Garcia", "Haddad", "Ibrahim", "Jensen", "Kaur",
	"Kowalski", "Larsen", "Mendes", "Moreau", "Nakamura", "Novak", "Okafor",
	"Petrov", "Quinn", "Rossi", "Sato", "Schneider", "Silva", "Tanaka",
	"Ueda", "Vargas", "Weber", "Xu", "Yilmaz", "Zhang",
}

// fullName draws a first and a last name, in that order, from the stream.
func fullName(s *Source) string {
	first := firstNames[s.Intn(len(firstNames))]
	last := lastNames[s.Intn(len(lastNames))]
	return first + " " + last
}
