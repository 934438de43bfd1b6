package catalog

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/cinetech/cinetech/pkg/constants"
)

// SampleSnapshot returns the built-in demonstration dataset: five
// well-known directors and one film for each.
func SampleSnapshot() *Snapshot {
	return &Snapshot{
		Version: constants.SnapshotVersion,
		Directors: []*Director{
			{ID: 1, Name: "Christopher Nolan", Nationality: "British", Birthdate: "1970-07-30", Bio: "British director, screenwriter and producer known for his intricate films."},
			{ID: 2, Name: "Quentin Tarantino", Nationality: "American", Birthdate: "1963-03-27", Bio: "American director, screenwriter and producer, master of dialogue and stylized violence."},
			{ID: 3, Name: "Steven Spielberg", Nationality: "American", Birthdate: "1946-12-18", Bio: "American director, screenwriter and producer, pioneer of modern cinema."},
			{ID: 4, Name: "Martin Scorsese", Nationality: "American", Birthdate: "1942-11-17", Bio: "American director, screenwriter and producer, chronicler of organized crime."},
			{ID: 5, Name: "James Cameron", Nationality: "Canadian", Birthdate: "1954-08-16", Bio: "Canadian director, screenwriter and producer known for large-scale productions."},
		},
		Films: []*Film{
			{
				ID: 1, Title: "Inception", DirectorID: 1, Year: 2010,
				Genre: "Science-fiction", Duration: 148, Rating: 8.8,
				Poster:    "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_FMjpg_UX1000_.jpg",
				Synopsis:  "A thief who infiltrates dreams is tasked with planting an idea in a CEO's mind.",
				CreatedAt: sampleTime(2024, time.January, 15, 10, 30),
			},
			{
				ID: 2, Title: "Pulp Fiction", DirectorID: 2, Year: 1994,
				Genre: "Thriller", Duration: 154, Rating: 8.9,
				Poster:    "https://m.media-amazon.com/images/M/MV5BNGNhMDIzZTUtNTBlZi00MTRlLWFjM2ItYzViMjE3YzI5MjljXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_FMjpg_UX1000_.jpg",
				Synopsis:  "The lives of two hitmen, a boxer and a pair of diner bandits intertwine.",
				CreatedAt: sampleTime(2024, time.February, 20, 14, 45),
			},
			{
				ID: 3, Title: "Jurassic Park", DirectorID: 3, Year: 1993,
				Genre: "Adventure", Duration: 127, Rating: 8.2,
				Poster:    "https://m.media-amazon.com/images/M/MV5BMjM2MDgxMDg0Nl5BMl5BanBnXkFtZTgwNTM2OTM5NDE@._V1_FMjpg_UX1000_.jpg",
				Synopsis:  "An entrepreneur opens a theme park populated with cloned dinosaurs.",
				CreatedAt: sampleTime(2024, time.March, 10, 9, 15),
			},
			{
				ID: 4, Title: "The Departed", DirectorID: 4, Year: 2006,
				Genre: "Thriller", Duration: 151, Rating: 8.5,
				Poster:    "https://m.media-amazon.com/images/M/MV5BMTI1MTY2OTIxNV5BMl5BanBnXkFtZTYwNjQ4NjY3._V1_FMjpg_UX1000_.jpg",
				Synopsis:  "A cop infiltrates the Boston mob while a criminal infiltrates the police.",
				CreatedAt: sampleTime(2024, time.March, 25, 16, 20),
			},
			{
				ID: 5, Title: "Avatar", DirectorID: 5, Year: 2009,
				Genre: "Science-fiction", Duration: 162, Rating: 7.9,
				Poster:    "https://m.media-amazon.com/images/M/MV5BZDA0OGQxNTItMDZkMC00N2UyLTg3MzMtYTJmNjg3Nzk5MzRiXkEyXkFqcGdeQXVyMjUzOTY1NTc@._V1_FMjpg_UX1000_.jpg",
				Synopsis:  "A paraplegic marine is dispatched to the moon Pandora on a unique mission.",
				CreatedAt: sampleTime(2024, time.April, 5, 11, 10),
			},
		},
	}
}

// LoadSampleData replaces the catalog contents with the demonstration
// dataset.
func (c *Catalog) LoadSampleData() error {
	return c.ReplaceAll(SampleSnapshot())
}

func sampleTime(year int, month time.Month, day, hour, minute int) utc.Time {
	return utc.Time{Time: time.Date(year, month, day, hour, minute, 0, 0, time.UTC)}
}
