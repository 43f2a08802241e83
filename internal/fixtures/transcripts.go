package fixtures

import (
	"time"

	"github.com/jwulff/glucodash/internal/health"
)

// Transcribed appointments start at 09:00 on their date.
const transcriptStartHour = 9

type scriptLine struct {
	offsetMin float64
	speaker   health.Speaker
	message   string
}

type script struct {
	id, patientID, date string
	minutes             int
	summary             string
	lines               []scriptLine
}

var scripts = []script{
	{
		id:        "t-P2001-1",
		patientID: "P2001",
		date:      "2025-06-08",
		minutes:   28,
		summary:   "Follow-up for Type 2 Diabetes. A1C elevated at 8.21%, indicating suboptimal control. Patient reports challenges with medication adherence. Discussed smoking cessation and dietary modifications. Complications include diabetic retinopathy and neuropathy requiring close monitoring.",
		lines: []scriptLine{
			{0, health.SpeakerDoctor, "Good morning, Ava. How have you been managing since our last visit?"},
			{0.5, health.SpeakerPatient, "Honestly, not great. I've been having trouble remembering to take my Metformin regularly."},
			{1.5, health.SpeakerDoctor, "I see. That could explain why your A1C has increased to 8.21%. Let's talk about strategies to help you remember your medication."},
			{2.5, health.SpeakerPatient, "I know I need to do better. Work has been really stressful."},
			{3, health.SpeakerDoctor, "I understand. Have you considered setting phone reminders or using a pill organizer?"},
			{4, health.SpeakerPatient, "I haven't tried that. I could give it a shot."},
			{5, health.SpeakerDoctor, "Good. Now, I also want to discuss your smoking. We've talked about this before, but quitting would significantly improve your diabetes control and help with your retinopathy."},
			{6, health.SpeakerPatient, "I know. It's been hard to quit. I've cut down a bit though."},
			{7, health.SpeakerDoctor, "That's a start. I'd like to refer you to our smoking cessation program. They have excellent success rates. Your eyesight depends on this too - the retinopathy can progress if we don't get your blood sugar and smoking under control."},
			{8.5, health.SpeakerPatient, "You're right. I don't want to lose my vision. What about my neuropathy? My feet have been tingling more."},
			{9.5, health.SpeakerDoctor, "The neuropathy is related to the elevated blood sugar. Better control will help reduce those symptoms. Make sure you're checking your feet daily for any cuts or sores."},
			{11, health.SpeakerPatient, "Okay, I will. What about my diet? I know I need to eat better."},
			{12, health.SpeakerDoctor, "Yes, reducing refined carbs and increasing vegetables would help. I'll have our nutritionist reach out to you. Let's see you back in 6 weeks to check your progress."},
		},
	},
	{
		id:        "t-P2009-1",
		patientID: "P2009",
		date:      "2025-09-29",
		minutes:   35,
		summary:   "URGENT: Critical diabetes management review. A1C at 9.57% - significantly elevated. Patient with Type 1 Diabetes not currently on any medications, which is extremely concerning. History of heart failure and stroke. Immediate intervention required. Started insulin therapy and referred to endocrinologist and cardiologist.",
		lines: []scriptLine{
			{0, health.SpeakerDoctor, "Mr. Khan, I'm very concerned about your test results. Your A1C is 9.57%, which is dangerously high."},
			{1, health.SpeakerPatient, "I've been feeling very tired lately, and thirsty all the time."},
			{2, health.SpeakerDoctor, "Those are signs your diabetes is not controlled. I see you're not currently taking any diabetes medications. Can you tell me what happened?"},
			{3, health.SpeakerPatient, "I ran out of my insulin a few months ago and never refilled it. I thought I was feeling okay without it."},
			{4, health.SpeakerPatient, "Also, the medications are expensive, and I wasn't sure I really needed them."},
			{5, health.SpeakerDoctor, "Mr. Khan, with Type 1 Diabetes, insulin is absolutely essential. Your body cannot produce insulin on its own. Going without it is life-threatening, especially given your history of heart failure and stroke."},
			{6.5, health.SpeakerPatient, "I didn't realize it was that serious. I'm sorry."},
			{7.5, health.SpeakerDoctor, "Let's focus on getting you healthy. First, we need to restart your insulin immediately. I'm also connecting you with our patient assistance program to help with medication costs."},
			{9, health.SpeakerPatient, "That would be really helpful. I was worried about the cost."},
			{10, health.SpeakerDoctor, "Your health is the priority. Given your age and cardiac history, uncontrolled diabetes puts you at high risk for another stroke or heart complications. We need to be very careful."},
			{11.5, health.SpeakerPatient, "What do I need to do?"},
			{12, health.SpeakerDoctor, "I'm starting you on a long-acting insulin called glargine once daily, and a rapid-acting insulin with meals. You'll need to check your blood sugar at least 4 times per day."},
			{14, health.SpeakerPatient, "That sounds like a lot. Can my wife help me?"},
			{15, health.SpeakerDoctor, "Absolutely. I'd like her to come to your next appointment so we can teach you both. I'm also referring you to an endocrinologist for specialized diabetes care, and we need to follow up with cardiology given your heart condition."},
			{17, health.SpeakerPatient, "Okay. I understand this is serious now."},
			{18, health.SpeakerDoctor, "Good. I want to see you back in 2 weeks to check your blood sugar levels and adjust your insulin doses. Please call immediately if you experience chest pain, severe confusion, or if your blood sugar goes below 70 or above 300."},
		},
	},
	{
		id:        "t-P2004-1",
		patientID: "P2004",
		date:      "2025-08-13",
		minutes:   25,
		summary:   "Type 2 Diabetes follow-up. A1C at 8.19%, above target. Patient has diabetic retinopathy and hypertension requiring close monitoring. Currently smoking which exacerbates complications. Discussed medication adjustment and referral to ophthalmology for retinopathy screening.",
		lines: []scriptLine{
			{0, health.SpeakerDoctor, "Hello Mrs. Sharma, thank you for coming in today. Let's discuss your recent lab results."},
			{0.5, health.SpeakerPatient, "Hello Doctor. I know my blood sugar hasn't been great."},
			{1.5, health.SpeakerDoctor, "Your A1C is 8.19%. Our target is below 7%, so we need to make some adjustments. How has your sitagliptin been working for you?"},
			{2.5, health.SpeakerPatient, "I take it every day, but I still see high numbers on my glucose meter."},
			{3.5, health.SpeakerDoctor, "I think we need to add another medication. I'd like to start you on Metformin as well. It works differently than sitagliptin and should help bring your numbers down."},
			{5, health.SpeakerPatient, "More medication? I'm already taking so many pills for my blood pressure."},
			{6, health.SpeakerDoctor, "I understand it feels like a lot. But controlling your diabetes is crucial, especially because you already have some retinopathy. How was your eye exam with the ophthalmologist?"},
			{7.5, health.SpeakerPatient, "They said my eyes show some damage but it's not too bad yet. They want to monitor it closely."},
			{8.5, health.SpeakerDoctor, "Exactly. And the best way to prevent it from getting worse is to control your blood sugar and stop smoking. The smoking makes everything worse - your diabetes, your blood pressure, and especially your eyes."},
			{10, health.SpeakerPatient, "I know, I know. Everyone keeps telling me to quit. It's just so hard."},
			{11, health.SpeakerDoctor, "Would you be willing to try nicotine patches or gum? We can prescribe those to help with the cravings."},
			{12, health.SpeakerPatient, "Maybe. I'll think about it."},
			{13, health.SpeakerDoctor, "Please do. Your vision is at stake here. Let's also check your blood pressure today - how has that been?"},
			{14, health.SpeakerPatient, "It's been okay, I think. Sometimes I feel a bit dizzy."},
			{15, health.SpeakerDoctor, "Let me check it now. [pause] It's 157/96, which is too high. We may need to adjust your blood pressure medication too. I want you back in 4 weeks to see how the Metformin is working."},
		},
	},
}

func transcripts() []health.Transcript {
	out := make([]health.Transcript, 0, len(scripts))
	for _, s := range scripts {
		day := health.MustParseDate(s.date)
		start := day.Add(transcriptStartHour * time.Hour)

		lines := make([]health.TranscriptLine, len(s.lines))
		for i, l := range s.lines {
			lines[i] = health.TranscriptLine{
				At:      start.Add(time.Duration(l.offsetMin * float64(time.Minute))),
				Speaker: l.speaker,
				Message: l.message,
			}
		}

		out = append(out, health.Transcript{
			ID:        s.id,
			PatientID: s.patientID,
			Date:      day,
			Duration:  time.Duration(s.minutes) * time.Minute,
			Summary:   s.summary,
			Lines:     lines,
		})
	}
	return out
}
