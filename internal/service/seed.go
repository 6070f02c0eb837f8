package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"healthyideas/internal/model"
	"healthyideas/internal/repository"
)

// demoEmail owns the seeded starter catalog.
const demoEmail = "demo@healthyideas.local"

// SeedService populates an empty database with a starter catalog of
// ideas across all four categories. It refuses to run against a
// non-empty ideas table, so calling it repeatedly is safe.
type SeedService struct {
	ideaRepo repository.IdeaRepository
	userRepo repository.UserRepository
}

func NewSeedService(ideaRepo repository.IdeaRepository, userRepo repository.UserRepository) *SeedService {
	return &SeedService{
		ideaRepo: ideaRepo,
		userRepo: userRepo,
	}
}

// SeedResult reports what the seeding run did.
type SeedResult struct {
	Skipped       bool `json:"skipped"`
	ExistingCount int  `json:"existing_count,omitempty"`
	Inserted      int  `json:"inserted,omitempty"`
}

// Run seeds the starter ideas under a demo account, creating the
// account if needed. The demo account gets an unguessable random
// password; it exists only to satisfy the owner-reference invariant.
func (s *SeedService) Run(ctx context.Context) (*SeedResult, error) {
	existingCount, err := s.ideaRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ideas: %w", err)
	}
	if existingCount > 0 {
		return &SeedResult{Skipped: true, ExistingCount: existingCount}, nil
	}

	demoUser, err := s.userRepo.GetByEmail(ctx, demoEmail)
	if err != nil {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("hash demo password: %w", hashErr)
		}
		demoUser = &model.User{
			Email:          demoEmail,
			PasswordHashed: string(hashed),
		}
		if createErr := s.userRepo.Create(ctx, demoUser); createErr != nil {
			return nil, fmt.Errorf("create demo user: %w", createErr)
		}
	}

	inserted := 0
	for _, seed := range seedIdeas {
		idea := seed
		idea.OwnerID = demoUser.ID
		if err := s.ideaRepo.Create(ctx, &idea); err != nil {
			return nil, fmt.Errorf("insert seed idea %q: %w", idea.Title, err)
		}
		inserted++
	}

	return &SeedResult{Inserted: inserted}, nil
}

var seedIdeas = []model.Idea{
	// workout
	{
		Title:          "Beginner Full-Body Home Workout (No Equipment)",
		ImageURL:       "https://images.healthyideas.local/seed/workout-fullbody.jpg",
		Description:    "A simple full-body routine you can do at home 3 times per week. Focus on controlled tempo, good form, and consistency instead of intensity. Start with 2 sets of 10-12 reps per exercise and add reps or a third set only when it feels easy. Always warm up for 5 minutes (joint rotations + light marching in place) and finish with gentle stretching.",
		ConciseContent: "Simple 3x/week home routine.",
		Category:       model.CategoryWorkout,
	},
	{
		Title:          "30-Minute HIIT Routine for Busy Days",
		ImageURL:       "https://images.healthyideas.local/seed/workout-hiit.jpg",
		Description:    "A 30-minute high-intensity interval training (HIIT) session for people with limited time. Work blocks of 30-40 seconds followed by 20-30 seconds rest. Choose 4-6 exercises that hit large muscle groups (squats, lunges, push-ups, mountain climbers). Do 3-4 rounds. Keep at least one rest day after intense HIIT to protect joints and avoid burnout.",
		ConciseContent: "Quick 30-min HIIT session.",
		Category:       model.CategoryWorkout,
	},
	// lifestyle
	{
		Title:          "Evening Routine for Better Sleep Quality",
		ImageURL:       "https://images.healthyideas.local/seed/lifestyle-sleep.jpg",
		Description:    "A gentle evening routine that helps your nervous system switch from work mode to recovery. 60-90 minutes before bed, dim the lights and reduce screens. Do a short walk or stretching, write down tomorrow's 3 priorities on paper, and avoid caffeine after 15:00. Try to keep a consistent sleep window (for example 23:00-07:00) even on weekends.",
		ConciseContent: "Evening habits for deep sleep.",
		Category:       model.CategoryLifestyle,
	},
	{
		Title:          "Daily Structure for More Stable Energy",
		ImageURL:       "https://images.healthyideas.local/seed/lifestyle-energy.jpg",
		Description:    "Instead of random days, think in blocks: focus block (90-120 minutes of deep work), movement block (10-20 minutes walk or light exercise), admin block (messages, email, chores), and recovery block (time without screens, hobbies, social connection). Rotating these blocks through the day keeps stress lower and energy more stable.",
		ConciseContent: "Structure your day in blocks.",
		Category:       model.CategoryLifestyle,
	},
	// food
	{
		Title:          "High-Protein Breakfast Bowl (5 Minutes)",
		ImageURL:       "https://images.healthyideas.local/seed/food-breakfast.jpg",
		Description:    "Base: Greek yogurt or skyr + a handful of oats. Add a source of fruit (berries or banana), some healthy fats (nuts or seeds), and a pinch of cinnamon. This combination gives a solid amount of protein, fiber, and slow carbohydrates, which reduces mid-morning cravings and keeps focus more stable. Adjust portion size based on your hunger and activity level.",
		ConciseContent: "Fast breakfast with protein.",
		Category:       model.CategoryFood,
	},
	{
		Title:          "3-Day Simple Meal Prep for Busy Weeks",
		ImageURL:       "https://images.healthyideas.local/seed/food-mealprep.jpg",
		Description:    "Cook once, eat multiple times. Pick one protein (chicken, tofu, beans), one carb source (rice, potatoes, quinoa), and 2-3 vegetables. Season differently for each container so meals do not feel identical (for example: Mexican-style, Mediterranean, and curry). This reduces decision fatigue and makes it much easier to stay on track during stressful days.",
		ConciseContent: "Cook once, eat for 3 days.",
		Category:       model.CategoryFood,
	},
	// mindful
	{
		Title:          "5-Minute Morning Mindfulness Check-In",
		ImageURL:       "https://images.healthyideas.local/seed/mindful-morning.jpg",
		Description:    "Before reaching for your phone, sit comfortably and take five slow breaths. Notice three things you can hear, two things you can feel, and one thing you can see. Finish by naming how you feel in one or two words, without judging it. This short sensory check-in grounds you before the day's inputs start competing for attention.",
		ConciseContent: "Grounded start to the day.",
		Category:       model.CategoryMindful,
	},
	{
		Title:          "Box Breathing Technique for Stressful Moments",
		ImageURL:       "https://images.healthyideas.local/seed/mindful-breathing.jpg",
		Description:    "Box breathing (4-4-4-4) is a simple tool used in high-stress environments. Inhale through the nose for 4 seconds, hold for 4, exhale for 4, hold empty for 4. Repeat for 1-3 minutes. It slows the heart rate and shifts your body towards a calmer state, which helps with decision-making and reduces impulsive reactions.",
		ConciseContent: "4-4-4-4 breathing for calm.",
		Category:       model.CategoryMindful,
	},
}
