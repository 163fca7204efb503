/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package prompts

// Default prompt texts. Each can be overridden by a file in the templates directory.
const (
	// PlanPreamble opens the plan prompt. The profile block follows it.
	PlanPreamble = `You are an expert fitness coach and nutritionist. Generate a comprehensive, personalized fitness plan based on the following user profile:`

	// PlanJSONShape is the literal JSON object the model must fill in.
	// It is always appended by the builder and is not overridable.
	PlanJSONShape = `Please provide a detailed response in the following JSON format:
{
  "workoutPlan": [
    {
      "day": "Day 1",
      "exercises": [
        {
          "name": "Exercise name",
          "sets": 3,
          "reps": "10-12",
          "restTime": "60 seconds",
          "description": "Brief description"
        }
      ]
    }
  ],
  "dietPlan": {
    "meals": [
      {
        "mealType": "Breakfast",
        "items": ["item1", "item2"],
        "calories": "400-500 kcal"
      }
    ]
  },
  "tips": ["tip1", "tip2", "tip3", "tip4", "tip5"],
  "motivation": "Motivational message"
}`

	// PlanInstructions closes the plan prompt.
	PlanInstructions = `Generate a 7-day workout plan with appropriate exercises for their fitness level and location. Include a complete daily diet plan with breakfast, lunch, dinner, and snacks. Provide 5 lifestyle and posture tips. End with an inspiring motivational message.`

	// ImagePromptTemplate wraps the subject of an illustrative image. %s is the subject.
	ImagePromptTemplate = `Generate a high-quality, realistic image of: %s. Make it clear, well-lit, and suitable for a fitness app. Style: photographic, professional, clean background. Return both a description and generate an image.`
)
