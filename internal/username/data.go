package username

// Honorifics and suffixes keep their punctuation here; the generator
// strips non-word characters from every fragment it draws.

var enPrefixFemale = []string{"Mrs.", "Ms.", "Miss", "Dr."}
var enPrefixMale = []string{"Mr.", "Dr."}
var enPrefixNonbinary = []string{"Mx.", "Dr."}

var enFirstFemale = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara",
	"Susan", "Jessica", "Sarah", "Karen", "Lisa", "Nancy",
	"Betty", "Margaret", "Sandra", "Ashley",
}

var enFirstMale = []string{
	"James", "Robert", "John", "Michael", "David", "William",
	"Richard", "Joseph", "Thomas", "Charles", "Christopher", "Daniel",
	"Matthew", "Anthony", "Mark", "Steven",
}

var enFirstNonbinary = []string{
	"Alex", "Avery", "Casey", "Charlie", "Dakota", "Emerson",
	"Finley", "Jordan", "Morgan", "Quinn", "Riley", "Rowan",
}

var enLast = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
	"Miller", "Davis", "Rodriguez", "Martinez", "Wilson", "Anderson",
	"Taylor", "Thomas", "Moore", "Jackson", "Martin", "Lee",
	"Thompson", "White", "O'Brien", "Harris", "Clark", "Lewis",
}

var enSuffix = []string{"Jr.", "Sr.", "II", "III", "IV", "V", "MD", "DDS", "PhD"}

var engbPrefixFemale = []string{"Mrs", "Ms", "Miss"}
var engbPrefixMale = []string{"Mr"}

var engbFirstFemale = []string{
	"Amelia", "Olivia", "Isla", "Emily", "Poppy", "Ava",
	"Isabella", "Jessica", "Lily", "Sophie", "Grace", "Ruby",
}

var engbFirstMale = []string{
	"Oliver", "George", "Harry", "Jack", "Jacob", "Charlie",
	"Thomas", "Oscar", "William", "James", "Henry", "Alfie",
}

var engbLast = []string{
	"Smith", "Jones", "Taylor", "Williams", "Brown", "Davies",
	"Evans", "Wilson", "Thomas", "Roberts", "Johnson", "Lewis",
	"Walker", "Robinson", "Wood", "Thompson", "White", "Watson",
	"Jackson", "Wright",
}

var frPrefixFemale = []string{"Mme", "Mlle"}
var frPrefixMale = []string{"M."}

var frFirstFemale = []string{
	"Marie", "Camille", "Léa", "Chloé", "Manon", "Inès",
	"Jeanne", "Louise", "Emma", "Zoé", "Margaux", "Élodie",
}

var frFirstMale = []string{
	"Jean", "Pierre", "Louis", "Hugo", "Lucas", "Théo",
	"Gabriel", "Arthur", "Paul", "Antoine", "Maxime", "Nicolas",
}

var frLast = []string{
	"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard",
	"Petit", "Durand", "Leroy", "Moreau", "Simon", "Laurent",
	"Lefebvre", "Michel", "Bertrand", "Roux", "Vincent", "Fournier",
	"Girard", "Lambert",
}

var dePrefixFemale = []string{"Frau", "Dr."}
var dePrefixMale = []string{"Herr", "Dr."}

var deFirstFemale = []string{
	"Anna", "Lena", "Mia", "Emma", "Hannah", "Laura",
	"Lea", "Sophie", "Julia", "Marie", "Katharina", "Johanna",
}

var deFirstMale = []string{
	"Lukas", "Leon", "Finn", "Paul", "Jonas", "Felix",
	"Maximilian", "Moritz", "Tim", "Jan", "Niklas", "Tobias",
}

var deLast = []string{
	"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer",
	"Wagner", "Becker", "Schulz", "Hoffmann", "Schäfer", "Koch",
	"Bauer", "Richter", "Klein", "Wolf", "Schröder", "Neumann",
	"Schwarz", "Zimmermann",
}

var esPrefixFemale = []string{"Sra.", "Srta."}
var esPrefixMale = []string{"Sr."}

var esFirstFemale = []string{
	"María", "Carmen", "Lucía", "Sofía", "Paula", "Valeria",
	"Elena", "Sara", "Marta", "Claudia", "Alba", "Julia",
}

var esFirstMale = []string{
	"José", "Antonio", "Manuel", "Francisco", "David", "Juan",
	"Javier", "Daniel", "Carlos", "Miguel", "Alejandro", "Pablo",
}

var esLast = []string{
	"García", "Rodríguez", "González", "Fernández", "López", "Martínez",
	"Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz",
	"Hernández", "Díaz", "Moreno", "Muñoz", "Álvarez", "Romero",
	"Alonso", "Gutiérrez",
}

var locales = map[string]*pool{
	"en": {
		prefix: map[Gender][]string{
			GenderAny:       union(enPrefixFemale, enPrefixMale, enPrefixNonbinary),
			GenderFemale:    enPrefixFemale,
			GenderMale:      enPrefixMale,
			GenderNonbinary: enPrefixNonbinary,
		},
		first: map[Gender][]string{
			GenderAny:       union(enFirstFemale, enFirstMale, enFirstNonbinary),
			GenderFemale:    enFirstFemale,
			GenderMale:      enFirstMale,
			GenderNonbinary: enFirstNonbinary,
		},
		last:   enLast,
		suffix: enSuffix,
	},
	"en-gb": {
		prefix: map[Gender][]string{
			GenderAny:    union(engbPrefixFemale, engbPrefixMale),
			GenderFemale: engbPrefixFemale,
			GenderMale:   engbPrefixMale,
		},
		first: map[Gender][]string{
			GenderAny:    union(engbFirstFemale, engbFirstMale),
			GenderFemale: engbFirstFemale,
			GenderMale:   engbFirstMale,
		},
		last: engbLast,
	},
	"fr": {
		prefix: map[Gender][]string{
			GenderAny:    union(frPrefixFemale, frPrefixMale),
			GenderFemale: frPrefixFemale,
			GenderMale:   frPrefixMale,
		},
		first: map[Gender][]string{
			GenderAny:    union(frFirstFemale, frFirstMale),
			GenderFemale: frFirstFemale,
			GenderMale:   frFirstMale,
		},
		last: frLast,
	},
	"de": {
		prefix: map[Gender][]string{
			GenderAny:    union(dePrefixFemale, dePrefixMale),
			GenderFemale: dePrefixFemale,
			GenderMale:   dePrefixMale,
		},
		first: map[Gender][]string{
			GenderAny:    union(deFirstFemale, deFirstMale),
			GenderFemale: deFirstFemale,
			GenderMale:   deFirstMale,
		},
		last: deLast,
	},
	"es": {
		prefix: map[Gender][]string{
			GenderAny:    union(esPrefixFemale, esPrefixMale),
			GenderFemale: esPrefixFemale,
			GenderMale:   esPrefixMale,
		},
		first: map[Gender][]string{
			GenderAny:    union(esFirstFemale, esFirstMale),
			GenderFemale: esFirstFemale,
			GenderMale:   esFirstMale,
		},
		last: esLast,
	},
}
