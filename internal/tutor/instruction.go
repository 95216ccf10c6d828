// Package tutor selects the tutoring instruction that matches a student's stress level.
package tutor

import (
	"fmt"

	"github.com/temirov/auralearn/internal/stress"
)

const (
	briefInstructionThresholdConstant = 7
	selectErrorTemplateConstant       = "unable to select tutoring instruction: %w"
)

// Style distinguishes the two tutoring registers.
type Style string

// Supported styles.
const (
	StyleBrief      Style = "brief"
	StyleStructured Style = "structured"
)

// BriefInstruction keeps answers short and scannable for students under high stress.
const BriefInstruction = `You are an AI tutor helping a neurodiverse student who is experiencing high stress (stress level > 7).

IMPORTANT GUIDELINES:
- Be EXTREMELY BRIEF and concise
- Use emojis to make the response more engaging and easier to scan
- Use **bold** formatting for key concepts and important terms
- Break information into very short, digestible chunks
- Focus on the most essential information only
- Use bullet points or numbered lists when possible
- Keep sentences short and direct
- Avoid overwhelming the student with too much information at once

Your goal is to help the student understand the concept without adding to their stress.`

// StructuredInstruction asks for a thorough, step by step explanation.
const StructuredInstruction = `You are an AI tutor helping a neurodiverse student.

IMPORTANT GUIDELINES:
- Provide a structured, detailed explanation
- Break down complex concepts into clear, logical steps
- Use examples to illustrate key points
- Organize information in a clear hierarchy
- Be patient and thorough in your explanations
- Consider different learning styles and provide multiple ways to understand the concept

Your goal is to help the student fully understand the topic.`

// Instruction is the system prompt chosen for a level.
type Instruction struct {
	Style Style  `json:"style" yaml:"style"`
	Text  string `json:"text" yaml:"text"`
}

// Select returns the brief instruction above level 7 and the structured one otherwise.
// The cut-off sits one level above the UI high tier.
func Select(level int) (Instruction, error) {
	if validationError := stress.ValidateLevel(level); validationError != nil {
		return Instruction{}, fmt.Errorf(selectErrorTemplateConstant, validationError)
	}
	if level > briefInstructionThresholdConstant {
		return Instruction{Style: StyleBrief, Text: BriefInstruction}, nil
	}
	return Instruction{Style: StyleStructured, Text: StructuredInstruction}, nil
}
