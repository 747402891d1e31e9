package importservice

// GroupByDisciplines buckets validated rows into disciplines keyed by
// "<Disziplin> <Spielklasse>". Discipline keys appear in first-seen order and
// teams within a discipline preserve row order. Pure transform, no I/O.
func GroupByDisciplines(rows []ImportRow) ParsedImportData {
	index := make(map[string]int, len(rows))
	data := make(ParsedImportData, 0)

	for _, row := range rows {
		key := row.Discipline + " " + row.Class
		i, ok := index[key]
		if !ok {
			i = len(data)
			index[key] = i
			data = append(data, DisciplineGroup{Key: key, Name: row.Discipline, Class: row.Class})
		}

		team := Team{{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Gender:    row.Gender,
			Club:      row.Club,
		}}
		if row.Partner != nil {
			team = append(team, InsertPlayer{
				FirstName: row.Partner.FirstName,
				LastName:  row.Partner.LastName,
				Gender:    row.Partner.Gender,
				Club:      row.Partner.Club,
			})
		}

		data[i].Teams = append(data[i].Teams, team)
	}

	return data
}
