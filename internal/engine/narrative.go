package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const navyMethodPrefix = "U.S. Navy 둘레 공식으로 계산한 "

// baseRecommendations is the fixed guidance list attached to every summary,
// in this order.
var baseRecommendations = []string{
	"규칙적인 식사와 수분 섭취를 유지하세요.",
	"가능하면 신선한 재료를 선택하세요.",
	"영양소 균형을 위해 다양한 색상의 과일과 채소를 섭취하세요.",
	"제지방량 유지를 위해 충분한 단백질 섭취가 중요합니다.",
}

// buildNarrative renders the computed figures into the analysis sentence and
// the guidance list. A non-empty allergy list appends one advisory line
// naming the allergies verbatim; it never changes meal selection.
func buildNarrative(comp bodyComposition, bmr, tdee float64, allergies []string) (analysis string, recommendations []string) {
	prefix := ""
	if comp.Circumference {
		prefix = navyMethodPrefix
	}

	analysis = fmt.Sprintf(
		"%s체지방률은 %s%%이며, 제지방량은 %skg입니다. Katch-McArdle 공식으로 계산한 기초대사량(BMR)은 %dkcal이며, BMI %s을 고려하여 귀하의 활동량과 목표에 맞게 일일 총 에너지 소모량(TDEE) %dkcal을 기준으로 맞춤형 식단을 제시합니다.",
		prefix,
		formatRounded(comp.BodyFat),
		formatRounded(comp.LeanBodyMass),
		int(math.Round(bmr)),
		formatRounded(comp.BMI),
		int(math.Round(tdee)),
	)

	recommendations = append([]string(nil), baseRecommendations...)
	if len(allergies) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%s 알레르기를 고려한 식단입니다.", strings.Join(allergies, ", ")))
	}
	return analysis, recommendations
}

// formatRounded renders a value rounded to one decimal, dropping a trailing
// ".0" the way a JSON number would (23 rather than 23.0).
func formatRounded(x float64) string {
	return strconv.FormatFloat(round1(x), 'f', -1, 64)
}
