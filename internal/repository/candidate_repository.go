package repository

import (
	"context"
	"strings"

	"talent-search/internal/database"
	"talent-search/internal/domain/candidate"
)

// PostgresCandidateStore implements candidate.Store on the candidates table.
// Records originate from resume ingestion, which owns writes; this store only
// reads.
type PostgresCandidateStore struct {
	db database.DB
}

func NewPostgresCandidateStore(db database.DB) *PostgresCandidateStore {
	return &PostgresCandidateStore{db: db}
}

const candidateColumns = `
	id,
	coalesce(name, ''),
	coalesce(email, ''),
	coalesce(phone, ''),
	coalesce(current_position, ''),
	coalesce(desired_position, ''),
	coalesce(current_company, ''),
	coalesce(location, ''),
	coalesce(total_experience, ''),
	coalesce(technical_skills, '{}'),
	coalesce(soft_skills, '{}'),
	coalesce(certifications, '{}'),
	coalesce(languages, '{}'),
	coalesce(qualification, ''),
	coalesce(degree, ''),
	coalesce(summary, ''),
	coalesce(resume_text, ''),
	coalesce(tags, '{}'),
	coalesce(status, ''),
	coalesce(uploaded_at, '')`

const candidateSearchVector = `to_tsvector('english', concat_ws(' ',
	current_position, desired_position, current_company, summary, resume_text,
	array_to_string(technical_skills, ' '), array_to_string(soft_skills, ' ')))`

func (r *PostgresCandidateStore) FetchAll(ctx context.Context) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func (r *PostgresCandidateStore) FullTextSearch(ctx context.Context, query string) ([]candidate.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []candidate.Candidate{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates
		 WHERE `+candidateSearchVector+` @@ plainto_tsquery('english', $1)`,
		query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func (r *PostgresCandidateStore) SkillSearch(ctx context.Context, skills []string) ([]candidate.Candidate, error) {
	lowered := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		lowered = append(lowered, s)
	}
	if len(lowered) == 0 {
		return []candidate.Candidate{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates
		 WHERE EXISTS (
		     SELECT 1
		     FROM unnest(coalesce(technical_skills, '{}') || coalesce(soft_skills, '{}')) AS s
		     WHERE lower(s) = ANY($1)
		 )
		 OR `+candidateSearchVector+` @@ plainto_tsquery('english', array_to_string($1::text[], ' '))`,
		lowered,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func scanCandidates(rows database.Rows) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		var c candidate.Candidate
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Phone,
			&c.CurrentRole,
			&c.DesiredRole,
			&c.CurrentCompany,
			&c.Location,
			&c.TotalExperience,
			&c.TechnicalSkills,
			&c.SoftSkills,
			&c.Certifications,
			&c.Languages,
			&c.Qualification,
			&c.Degree,
			&c.Summary,
			&c.ResumeText,
			&c.Tags,
			&c.Status,
			&c.UploadedAt,
		); err != nil {
			return nil, err
		}
		c.Normalize()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
