package schemas

// analysisSchema constrains the skills_analysis record produced by the
// analysis collaborator.
const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["technical_skills", "experience_level"],
  "properties": {
    "technical_skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "years_of_experience": {"type": "number"},
    "education": {
      "type": "object",
      "properties": {
        "degree": {"type": "string"},
        "institution": {"type": "string"},
        "graduation_year": {"type": "integer"}
      }
    },
    "experience_level": {"type": "string"},
    "key_achievements": {
      "type": "array",
      "items": {"type": "string"}
    },
    "domain_expertise": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// extractionSchema constrains the structured_data record produced by the
// extraction collaborator.
const extractionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["technical_skills"],
  "properties": {
    "contact_info": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "summary": {"type": "string"},
    "technical_skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "field_of_study": {"type": "string"},
          "institution": {"type": "string"},
          "graduation_year": {"type": "integer"}
        }
      }
    },
    "work_experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "duration": {"type": "string"},
          "responsibilities": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {"type": "string"}
    },
    "domain_expertise": {
      "type": "array",
      "items": {"type": "string"}
    },
    "years_of_experience": {"type": "number"}
  }
}`
