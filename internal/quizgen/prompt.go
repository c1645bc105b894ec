package quizgen

import (
	"fmt"
	"strings"
)

// poolSchemaText is the schema block repeated in every prompt so the
// model has the exact output shape in front of it.
const poolSchemaText = `{
  "quiz_pool": [
    {
      "id": int,
      "question": str,
      "explanation": str,
      "options": [
        {"key": "A", "text": str, "is_correct": bool, "rationale": str},
        {"key": "B", "text": str, "is_correct": bool, "rationale": str},
        {"key": "C", "text": str, "is_correct": bool, "rationale": str},
        {"key": "D", "text": str, "is_correct": bool, "rationale": str},
        {"key": "E", "text": str, "is_correct": bool, "rationale": str}
      ]
    }
  ]
}`

// fewShotExample anchors option and explanation length. Models that see
// a concrete example produce far fewer under-length options.
const fewShotExample = `{
  "quiz_pool": [
    {
      "id": 1,
      "question": "What is the primary purpose of implementing a load balancer within a distributed microservices architecture?",
      "explanation": "Load balancers are essential infrastructure components that distribute incoming network traffic across multiple servers. This prevents any single server from becoming overwhelmed, ensuring high availability and reliability of the application.",
      "options": [
        {"key": "A", "text": "It distributes incoming network requests evenly across multiple backend servers to prevent any single server from becoming overloaded.", "is_correct": true, "rationale": "Load balancers prevent server overload by distributing traffic."},
        {"key": "B", "text": "It stores frequently accessed user data in memory to enable fast retrieval during periods of high traffic volume.", "is_correct": false, "rationale": "This describes caching systems, not load balancers."},
        {"key": "C", "text": "It automatically deploys and rolls out application code updates across all production environments without manual intervention.", "is_correct": false, "rationale": "This describes CI/CD deployment pipelines, not load balancers."},
        {"key": "D", "text": "It encrypts and secures all network traffic flowing between internal backend microservices using TLS certificates.", "is_correct": false, "rationale": "This describes service mesh or TLS termination, not load balancing."},
        {"key": "E", "text": "It records and logs detailed API performance metrics for display on monitoring dashboards and alerting systems.", "is_correct": false, "rationale": "This describes observability tools, not load balancers."}
      ]
    }
  ]
}`

// GeneratorSystemPrompt builds the system prompt for the generator call.
func GeneratorSystemPrompt(unit Unit, rc RoleContext, cfg Config) string {
	l := cfg.Limits
	var b strings.Builder

	fmt.Fprintf(&b, "You are a precise Subject Matter Expert and Lead Interviewer for the role %s within the %s sector.\n\n",
		DisplayName(unit.Career), DisplayName(unit.Sector))

	b.WriteString("ROLE CONTEXT (for grounding only, not a limitation):\n")
	fmt.Fprintf(&b, "- Sector: %s", DisplayName(unit.Sector))
	if rc.SectorDescription != "" {
		fmt.Fprintf(&b, " (%s)", rc.SectorDescription)
	}
	b.WriteString("\n")
	branch := rc.Branch
	if branch == "" {
		branch = "General"
	}
	fmt.Fprintf(&b, "- Branch: %s\n", branch)
	fmt.Fprintf(&b, "- Role: %s\n", DisplayName(unit.Career))
	fmt.Fprintf(&b, "- Level: %d/5\n\n", unit.Level)

	b.WriteString(`The context above is a brief summary, not an exhaustive definition of the role.
Generate questions covering the full professional scope of this role, including:
core technical skills and domain knowledge; tools, technologies and workflows;
safety, standards, regulations and compliance; problem-solving and situational
judgement; communication and professional conduct; industry best practices and
real-world scenarios.

`)

	fmt.Fprintf(&b, "TASK: Generate EXACTLY %d unique multiple-choice questions (A-E) for interview Level %d.\n\n", cfg.PoolSize, unit.Level)

	b.WriteString("MANDATORY WORD COUNTS (your output will be REJECTED otherwise):\n")
	fmt.Fprintf(&b, "- Question text: MINIMUM %d words, MAXIMUM %d words\n", l.QuestionWordMin, l.QuestionWordMax)
	fmt.Fprintf(&b, "- Option text: MINIMUM %d words, MAXIMUM %d words (most common failure)\n", l.OptionWordMin, l.OptionWordMax)
	fmt.Fprintf(&b, "- Explanation: MINIMUM %d words, MAXIMUM %d words\n", l.ExplanationWordMin, l.ExplanationWordMax)
	fmt.Fprintf(&b, "- Rationale: MAXIMUM %d words\n\n", l.RationaleWordMax)

	fmt.Fprintf(&b, `Options that are only 5-8 words will be REJECTED.
Each option MUST be a complete, detailed sentence of at least %d words.

Before outputting, verify:
- Is each option at least %d words? Count them.
- Is each question at least %d words?
- Does each question have an explanation (%d-%d words)?
- Does each question have EXACTLY 5 options (A-E)?
- Is EXACTLY one option marked is_correct: true?

STRICT CONSTRAINTS:
- Output MUST be ONLY a valid JSON object.
- No markdown, no commentary, no explanation outside JSON.
- Schema EXACTLY:

`, l.OptionWordMin, l.OptionWordMin, l.QuestionWordMin, l.ExplanationWordMin, l.ExplanationWordMax)
	b.WriteString(poolSchemaText)

	fmt.Fprintf(&b, `

CONTENT RULES:
- EXACTLY one correct option per question.
- Options must be realistic, substantive, and similar in length.
- The explanation explains WHY the correct answer is right.
- Do NOT invent fictional tools, products, or companies.
- Do NOT output anything outside the JSON object.

EXAMPLE (copy this structure and word length style):

%s

Each option above is 15-20 words; your options must be this length too.

NOW GENERATE %d QUESTIONS FOLLOWING THIS EXACT STRUCTURE.`, fewShotExample, cfg.PoolSize)

	return b.String()
}

// GeneratorUserPrompt builds the user message for the generator call.
func GeneratorUserPrompt(unit Unit, cfg Config) string {
	l := cfg.Limits
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d Level %d interview questions for the role '%s' in the '%s' sector.\n",
		cfg.PoolSize, unit.Level, DisplayName(unit.Career), DisplayName(unit.Sector))
	fmt.Fprintf(&b, "Question IDs must start at 1 and go to %d.\n", cfg.PoolSize)
	fmt.Fprintf(&b, "REMEMBER: Each option text MUST be %d-%d words!\n", l.OptionWordMin, l.OptionWordMax)
	fmt.Fprintf(&b, "REMEMBER: Each question MUST have an explanation (%d-%d words)!", l.ExplanationWordMin, l.ExplanationWordMax)
	return b.String()
}

// CriticSystemPrompt builds the main critic system prompt.
func CriticSystemPrompt(limits Limits) string {
	var b strings.Builder
	b.WriteString(`You are an expert QA Reviewer (Critic) for interview question JSON data.

You are given a JSON object containing a quiz_pool that FAILED validation.
Your mission: fix the JSON so it passes ALL validation rules.

REQUIRED SCHEMA:

`)
	b.WriteString(poolSchemaText)
	fmt.Fprintf(&b, `

WORD COUNT REQUIREMENTS (most common failure):
- Question: MINIMUM %d words, MAXIMUM %d words
- Explanation: MINIMUM %d words, MAXIMUM %d words
- Option text: MINIMUM %d words, MAXIMUM %d words
- Rationale: MAXIMUM %d words

HOW TO FIX SHORT OPTIONS:
If an option like "Load balancers distribute traffic" (only 4 words) is too short,
expand it to: "Load balancers distribute incoming network traffic evenly across
multiple backend servers to prevent overload" (15 words).

HOW TO FIX MISSING OR SHORT EXPLANATIONS:
Add or expand the explanation so it says WHY the correct answer is correct
(%d-%d words). Each option MUST be a complete, detailed sentence.

CONTENT ACCURACY:
- All tools, products, frameworks, and technologies mentioned MUST be real.
- If you detect fictional or invented names, replace them with a real,
  well-known equivalent.
- Ensure all technical facts and concepts are accurate.

YOUR TASK:
1. Read the validation errors (if provided).
2. Fix ALL structural issues: missing fields, wrong types, invalid values.
3. Fix ALL word-count violations by expanding short text or trimming long text.
4. Ensure each question has a valid explanation (%d-%d words).
5. Ensure EXACTLY 5 options per question.
6. Ensure EXACTLY 1 correct option per question.
7. Preserve the original meaning and number of questions.
8. Verify no fictional tools, products, or companies remain.

OUTPUT FORMAT:
- Return ONLY the corrected JSON object.
- Do NOT wrap it in an array; just return {...}.
- No commentary, no markdown, no code fences.
- Start with { and end with }.`,
		limits.QuestionWordMin, limits.QuestionWordMax,
		limits.ExplanationWordMin, limits.ExplanationWordMax,
		limits.OptionWordMin, limits.OptionWordMax,
		limits.RationaleWordMax,
		limits.ExplanationWordMin, limits.ExplanationWordMax,
		limits.ExplanationWordMin, limits.ExplanationWordMax)
	return b.String()
}

// CriticSimpleSystemPrompt is the fallback critic prompt, used on the
// second repair attempt when the main prompt failed to produce a valid
// pool. Simpler instructions, structure first.
func CriticSimpleSystemPrompt(limits Limits) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a JSON repair assistant.

Fix this quiz JSON to match this exact schema:

{
  "quiz_pool": [
    {
      "id": int,
      "question": str (%d-%d words),
      "explanation": str (%d-%d words),
      "options": [
        {"key": "A", "text": str (%d-%d words), "is_correct": bool, "rationale": str},
        {"key": "B", "text": str (%d-%d words), "is_correct": bool, "rationale": str},
        {"key": "C", "text": str (%d-%d words), "is_correct": bool, "rationale": str},
        {"key": "D", "text": str (%d-%d words), "is_correct": bool, "rationale": str},
        {"key": "E", "text": str (%d-%d words), "is_correct": bool, "rationale": str}
      ]
    }
  ]
}

RULES:
- Each question needs exactly 5 options.
- Each question needs an explanation (%d-%d words) explaining why the correct answer is right.
- Each option text must be %d-%d words (expand short ones!).
- Exactly one option per question must have is_correct: true.
- All tools, products and technologies must be real.

OUTPUT FORMAT:
- Return ONLY a JSON object starting with { and ending with }.
- Do NOT wrap it in an array.
- No explanation outside JSON, no markdown.`,
		limits.QuestionWordMin, limits.QuestionWordMax,
		limits.ExplanationWordMin, limits.ExplanationWordMax,
		limits.OptionWordMin, limits.OptionWordMax,
		limits.OptionWordMin, limits.OptionWordMax,
		limits.OptionWordMin, limits.OptionWordMax,
		limits.OptionWordMin, limits.OptionWordMax,
		limits.OptionWordMin, limits.OptionWordMax,
		limits.ExplanationWordMin, limits.ExplanationWordMax,
		limits.OptionWordMin, limits.OptionWordMax)
	return b.String()
}

// CriticUserPrompt packages a pool and its violations for the critic
// call. Every pool is reviewed, so a pool that passed raw validation
// arrives with no error block and a review framing instead.
func CriticUserPrompt(poolJSON string, errs []ValidationError) string {
	var b strings.Builder
	if len(errs) == 0 {
		b.WriteString("Review the following quiz JSON for factual accuracy, schema compliance and word counts. Fix any issues and return the full corrected JSON.\n")
	} else {
		b.WriteString("The following JSON failed validation. Fix all issues.\n\n")
		b.WriteString("=== VALIDATION ERRORS ===\n")
		b.WriteString(FormatValidationErrors(errs))
		b.WriteString("\n")
	}
	b.WriteString("\n=== JSON TO FIX ===\n")
	b.WriteString(poolJSON)
	return b.String()
}

// SoftSkillsSystemPrompt builds the system prompt for the
// career-agnostic soft-skills unit.
func SoftSkillsSystemPrompt(cfg Config) string {
	l := cfg.Limits
	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert behavioural interviewer specializing in soft skills assessment.

Generate EXACTLY %d scenario-based soft skill interview questions.

MANDATORY WORD COUNTS:
- Question: MINIMUM %d words, MAXIMUM %d words
- Explanation: MINIMUM %d words, MAXIMUM %d words
- Option text: MINIMUM %d words, MAXIMUM %d words
- Rationale: MAXIMUM %d words

Each option MUST be a complete, detailed sentence of at least %d words.
Short options (5-8 words) will be REJECTED.

REQUIRED SCHEMA:

`, cfg.SoftSkillsCount,
		l.QuestionWordMin, l.QuestionWordMax,
		l.ExplanationWordMin, l.ExplanationWordMax,
		l.OptionWordMin, l.OptionWordMax,
		l.RationaleWordMax, l.OptionWordMin)
	b.WriteString(poolSchemaText)
	fmt.Fprintf(&b, `

CONTENT RULES:
- All questions must be scenario-based (describe a workplace situation).
- Each question must have an explanation (%d-%d words) explaining why the correct answer is right.
- Cover diverse soft skills: communication, teamwork, leadership, problem-solving, adaptability, time management, conflict resolution, emotional intelligence.
- EXACTLY one correct option per question.
- Options should represent realistic behavioural responses.
- No markdown or commentary.

Return ONLY the JSON object.`, l.ExplanationWordMin, l.ExplanationWordMax)
	return b.String()
}

// SoftSkillsUserPrompt builds the user message for the soft-skills call.
func SoftSkillsUserPrompt(cfg Config) string {
	return fmt.Sprintf("Generate %d soft skills interview questions.\nREMEMBER: Each option text MUST be %d-%d words!",
		cfg.SoftSkillsCount, cfg.Limits.OptionWordMin, cfg.Limits.OptionWordMax)
}
