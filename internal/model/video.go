package model

import "time"

// Video is one item of the fixed learning curriculum. The list is
// hand-authored reference data and never edited at runtime.
type Video struct {
	ID       string
	Title    string
	URL      string
	Duration int // total minutes
	Category string
	Order    int
}

// VideoProgress tracks cumulative watch time against one curriculum item.
// MinutesWatched never decreases and is clamped at the video's duration;
// Completed is derived from the clamped value, never set independently.
type VideoProgress struct {
	VideoID        string `gorm:"primaryKey"`
	MinutesWatched int
	Completed      bool
	LastWatched    time.Time
}

// LearningPath is the ordered DevOps curriculum.
var LearningPath = []Video{
	{ID: "linux_fcc_labs", Title: "Linux Crash Course for Beginners with Labs (freecodecamp.org)", URL: "https://www.youtube.com/watch?v=6WatcfENsOU", Duration: 141, Category: "Linux", Order: 1},
	{ID: "networking_comptia", Title: "CompTIA Network+ N10-009 Full Certification Course (PowerCert Animated Videos)", URL: "https://www.youtube.com/watch?v=CY4hn70K3r8", Duration: 257, Category: "Networking", Order: 2},
	{ID: "git_fcc_2026", Title: "Git & GitHub Crash Course for Beginners [2026] (freecodecamp.org)", URL: "https://www.youtube.com/watch?v=mAFoROnOfHs", Duration: 81, Category: "Git", Order: 3},
	{ID: "bash_fcc_tut", Title: "Bash Scripting Tutorial for Beginners (freecodecamp.org)", URL: "https://www.youtube.com/watch?v=tK9Oc6AEnR4", Duration: 48, Category: "Bash", Order: 4},
	{ID: "docker_fcc_full", Title: "Docker Tutorial for Beginners - Full DevOps Course (freecodecamp.org)", URL: "https://www.youtube.com/watch?v=fqMOX6JJhGo", Duration: 130, Category: "Docker", Order: 5},
	{ID: "cicd_nana_basic", Title: "GitHub Actions Tutorial - Concepts & Pipeline (TechWorld with Nana)", URL: "https://www.youtube.com/watch?v=R8_veQiYBjI", Duration: 33, Category: "CI/CD", Order: 6},
	{ID: "aws_fcc_clf02", Title: "AWS Certified Cloud Practitioner (CLF-C02) - Pass Exam (freecodecamp.org)", URL: "https://www.youtube.com/watch?v=NhDYbskXRgc", Duration: 857, Category: "AWS", Order: 7},
	{ID: "terraform_fcc_dev", Title: "Learn Terraform (and AWS) - Full Beginners Course (freecodecamp.org)", URL: "https://www.youtube.com/watch?v=iRaai1IBlB0", Duration: 99, Category: "Terraform", Order: 8},
	{ID: "k8s_fcc_cka", Title: "Kubernetes Course – CKA Exam Prep (freecodecamp.org)", URL: "https://www.youtube.com/watch?v=Fr9GqFwl6NM", Duration: 124, Category: "Kubernetes", Order: 9},
	{ID: "monitoring_vikas", Title: "Master Grafana & Prometheus Fast! Crash Course (Vikas Jha)", URL: "https://www.youtube.com/watch?v=hePmCMmekmo", Duration: 100, Category: "Monitoring", Order: 10},
}
