package sqlinline

const QInsertQuestionnaire = `--sql 9e528933-6f33-4e4c-ae39-0b04ce75f75a
insert into questionnaires (id, user_id, original_prompt, questions, status, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::text, '[]'::jsonb, 'pending', now(), now())
returning id, created_at, updated_at;
`

const QSetQuestionnaireQuestions = `--sql 686a431b-a7ed-4bd9-bdcc-63dd2501f9ed
update questionnaires
set questions = $2::jsonb,
    updated_at = now()
where id = $1::uuid
  and status = 'pending';
`

const QSelectQuestionnaireForUser = `--sql da7e4d1c-e2e5-4e99-ade9-dc02c7b7e364
select id, user_id, original_prompt, questions, coalesce(answers, '[]'::jsonb), status, created_at, updated_at
from questionnaires
where id = $1::uuid
  and user_id = $2::uuid
limit 1;
`

// QCompleteQuestionnaire stores answers and performs the pending -> completed
// transition in one statement so terminal records can never be re-completed.
const QCompleteQuestionnaire = `--sql f232eced-615f-48e2-8974-e1fdb0479d14
update questionnaires
set answers = $3::jsonb,
    status = 'completed',
    updated_at = now()
where id = $1::uuid
  and user_id = $2::uuid
  and status = 'pending';
`

const QCancelQuestionnaire = `--sql abb7202c-c51c-49d5-a1da-63813a9c7f73
update questionnaires
set status = 'cancelled',
    updated_at = now()
where id = $1::uuid
  and status = 'pending';
`
