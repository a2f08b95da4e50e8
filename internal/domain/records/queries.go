package records

import (
	"sort"
	"strings"
)

// Funciones puras sobre fichas ya leídas. recs viene en el orden del store
// (para historial/ficha: más reciente primero).

func BuildHistory(patientID string, recs []ClinicalRecord) History {
	h := History{
		PatientID:  patientID,
		Procedures: []string{},
		Entries:    []HistoryEntry{},
	}
	if len(recs) == 0 {
		return h
	}
	h.TutorID = optionalID(recs[0].TutorID)

	seen := map[string]struct{}{}
	for _, rec := range recs {
		h.Entries = append(h.Entries, HistoryEntry{
			Time:        rec.Time,
			Kind:        EntryConsultation,
			Description: consultationDescription,
			Cost:        rec.ConsultationCost,
		})
		for _, p := range rec.Procedures {
			if _, ok := seen[p.Name]; !ok && p.Name != "" {
				seen[p.Name] = struct{}{}
				h.Procedures = append(h.Procedures, p.Name)
			}
			h.Entries = append(h.Entries, HistoryEntry{
				Time:        rec.Time,
				Kind:        EntryProcedure,
				Description: p.Name,
				Cost:        p.Cost,
				Medications: nonNil(p.Medications),
				Doctors:     DoctorsLabel(p.Doctors),
			})
		}
	}
	return h
}

func BuildSheet(patientID string, recs []ClinicalRecord) Sheet {
	s := Sheet{
		PatientID: patientID,
		Vaccines:  DistinctVaccines(recs),
		Visits:    []Visit{},
	}
	if len(recs) == 0 {
		return s
	}
	s.TutorID = optionalID(recs[0].TutorID)

	for _, rec := range recs {
		v := Visit{
			Time: rec.Time,
			Vitals: Vitals{
				WeightKg:      rec.WeightKg,
				BloodPressure: rec.BloodPressure,
				TempC:         rec.TempC,
			},
			ConsultationCost: rec.ConsultationCost,
			Procedures:       make([]SheetProcedure, 0, len(rec.Procedures)),
		}
		for _, p := range rec.Procedures {
			v.Procedures = append(v.Procedures, SheetProcedure{
				Name:        p.Name,
				Cost:        p.Cost,
				Medications: nonNil(p.Medications),
			})
		}
		s.Visits = append(s.Visits, v)
	}
	return s
}

// optionalID: id vacío => nil (null en JSON).
func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// DistinctVaccines une las vacunas de todas las fichas, sin repetir,
// en orden de primera aparición.
func DistinctVaccines(recs []ClinicalRecord) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, rec := range recs {
		for _, v := range rec.Vaccines {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// RankProcedures cuenta ocurrencias y gasto por procedimiento y devuelve los
// limit con más ocurrencias. Empates: orden de primera aparición.
func RankProcedures(recs []ClinicalRecord, limit int) []RankingEntry {
	idx := map[string]int{}
	var out []RankingEntry
	for _, rec := range recs {
		for _, p := range rec.Procedures {
			if p.Name == "" {
				continue
			}
			i, ok := idx[p.Name]
			if !ok {
				i = len(out)
				idx[p.Name] = i
				out = append(out, RankingEntry{Procedure: p.Name})
			}
			out[i].Total++
			out[i].Spend += p.Cost
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []RankingEntry{}
	}
	return out
}

// DoctorsLabel arma "Nombre (Especialidad), ..." con las asignaciones que
// tienen nombre. Sin ninguna => "Médico no disponible".
func DoctorsLabel(docs []AssignedDoctor) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.Name == "" {
			continue
		}
		spec := d.Specialty
		if spec == "" {
			spec = noSpecialty
		}
		parts = append(parts, d.Name+" ("+spec+")")
	}
	if len(parts) == 0 {
		return noDoctorAvailable
	}
	return strings.Join(parts, ", ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
