package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

var (
	quizDocs        []string
	quizCount       int
	quizJSON        bool
	quizShowAnswers bool
	gradeType       string
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate and grade quizzes",
}

var quizGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quiz questions from indexed materials",
	RunE:  runQuizGenerate,
}

var quizGradeCmd = &cobra.Command{
	Use:   "grade [submitted] [correct]",
	Short: "Grade a submitted answer",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuizGrade,
}

func init() {
	quizGenerateCmd.Flags().StringSliceVarP(&quizDocs, "docs", "d", nil, "restrict to these document IDs")
	quizGenerateCmd.Flags().IntVarP(&quizCount, "count", "n", 5, "number of questions")
	quizGenerateCmd.Flags().BoolVar(&quizJSON, "json", false, "output as JSON")
	quizGenerateCmd.Flags().BoolVar(&quizShowAnswers, "show-answers", false, "print the correct answers")
	quizGradeCmd.Flags().StringVarP(&gradeType, "type", "t", string(domain.QuestionShortAnswer), "question type (multiple-choice, short-answer, true-false)")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizGradeCmd)
	rootCmd.AddCommand(quizCmd)
}

func runQuizGenerate(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}

	ctx := context.Background()
	questions, err := quizService.Generate(ctx, quizDocs, quizCount)
	if err != nil {
		if errors.Is(err, domain.ErrNoConcepts) {
			return errors.New("no quiz concepts found in the selected documents; try materials with definitions or lists")
		}
		return fmt.Errorf("quiz generation failed: %w", err)
	}

	if quizJSON {
		return outputJSON(cmd, questions)
	}

	for i, q := range questions {
		cmd.Printf("%d. [%s, %s] %s\n", i+1, q.Type, q.Difficulty, q.Question)
		for j, opt := range q.Options {
			cmd.Printf("   %s) %s\n", string(rune('a'+j)), opt)
		}
		if quizShowAnswers {
			cmd.Printf("   Answer: %s\n", q.CorrectAnswer)
			cmd.Printf("   Source: %s\n", q.SourceExcerpt)
		}
		cmd.Println()
	}
	cmd.Printf("Generated %d question(s).\n", len(questions))
	return nil
}

func runQuizGrade(cmd *cobra.Command, args []string) error {
	if quizService == nil {
		return errors.New("quiz service not configured")
	}

	questionType := domain.QuestionType(strings.ToLower(gradeType))
	if !questionType.IsValid() {
		return fmt.Errorf("unknown question type %q", gradeType)
	}

	result := quizService.Evaluate(args[0], args[1], questionType)

	cmd.Printf("Correct: %s\n", strconv.FormatBool(result.Correct))
	cmd.Printf("Score:   %.2f\n", result.Score)
	cmd.Printf("%s\n", result.Feedback)
	cmd.Printf("%s\n", result.Explanation)
	return nil
}
